package atmosphere

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNewKnownModel(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID() != 1 {
		t.Errorf("ID() = %d, want 1", m.ID())
	}
	if m.ObservationLevel() != DefaultObservationLevelM {
		t.Errorf("ObservationLevel() = %f, want %f", m.ObservationLevel(), DefaultObservationLevelM)
	}
}

func TestNewUnknownModel(t *testing.T) {
	for _, id := range []int{0, 2, 6, 22} {
		if _, err := New(id); err == nil {
			t.Errorf("New(%d): expected error, got nil", id)
		}
	}
}

func TestThicknessSeaLevel(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Linsley layer 1 at h=0: a+b = 1036.100895 g/cm^2.
	got := m.Thickness(0)
	if math.Abs(got-1036.100895) > 1e-4 {
		t.Errorf("Thickness(0) = %f, want 1036.100895", got)
	}
}

func TestThicknessMonotonicDecreasing(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prev := math.Inf(1)
	for h := 0.; h <= 1.2e7; h += 5.e4 {
		got := m.Thickness(h)
		if got > prev {
			t.Fatalf("Thickness(%g) = %f, above previous %f", h, got, prev)
		}
		if got < 0 {
			t.Fatalf("Thickness(%g) = %f, negative overburden", h, got)
		}
		prev = got
	}
}

func TestThicknessLayerContinuity(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, h := range []float64{4.e5, 1.e6, 4.e6, 1.e7} {
		below := m.Thickness(h - 1)
		above := m.Thickness(h + 1)
		if math.Abs(below-above) > 0.5 {
			t.Errorf("discontinuity at %g cm: %f vs %f", h, below, above)
		}
	}
}

func TestThicknessAboveAtmosphere(t *testing.T) {
	m, err := New(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Thickness(2.e7); got != 0 {
		t.Errorf("Thickness above atmosphere = %f, want 0", got)
	}
}

// writeProfile samples the built-in parametrization onto an atmprof-style
// table so the spline can be checked against the analytic values.
func writeProfile(t *testing.T, stepKm float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atmprof_test.dat")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	defer f.Close()
	fmt.Fprintln(f, "# alt[km] rho[g/cm^3] thick[g/cm^2] n-1")
	for alt := 0.; alt <= 112.; alt += stepKm {
		hCm := alt * 1.e5
		fmt.Fprintf(f, "%10.3f  %12.6E  %12.6E  %12.6E\n", alt, 0.0, linsleyThickness(hCm), 0.0)
	}
	return path
}

func TestProfileMatchesParametrization(t *testing.T) {
	m, err := NewFromProfile(writeProfile(t, 1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, hCm := range []float64{0, 3.3e5, 1.5e6, 5.e6, 9.9e6} {
		got := m.Thickness(hCm)
		want := linsleyThickness(hCm)
		if math.Abs(got-want) > 0.5 {
			t.Errorf("Thickness(%g) = %f, want about %f", hCm, got, want)
		}
	}
}

func TestProfileObservationLevel(t *testing.T) {
	m, err := NewFromProfile(writeProfile(t, 2.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ObservationLevel() != 0 {
		t.Errorf("ObservationLevel() = %f, want 0 (lowest table altitude)", m.ObservationLevel())
	}
}

func TestProfileClampsOutsideTable(t *testing.T) {
	m, err := NewFromProfile(writeProfile(t, 1.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := m.Thickness(-5.e4), m.Thickness(0); got != want {
		t.Errorf("below-table Thickness = %f, want clamp to %f", got, want)
	}
}

func TestProfileRejectsShortTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dat")
	if err := os.WriteFile(path, []byte("0 0 1036 0\n10 0 270 0\n"), 0o644); err != nil {
		t.Fatalf("failed to write table: %v", err)
	}
	if _, err := NewFromProfile(path); err == nil {
		t.Fatal("expected error for short table, got nil")
	}
}
