package fsutil

import (
	"testing"
)

func TestMemoryFileSystemCreateAndRead(t *testing.T) {
	m := NewMemoryFileSystem()

	f, err := m.Create("out/photons.grisu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.Write([]byte("S 1.0\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.Write([]byte("P 2.0\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := m.ReadFile("out/photons.grisu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "S 1.0\nP 2.0\n" {
		t.Errorf("ReadFile = %q, want %q", data, "S 1.0\nP 2.0\n")
	}
}

func TestMemoryFileSystemCreateTruncates(t *testing.T) {
	m := NewMemoryFileSystem()

	f, _ := m.Create("a.txt")
	f.Write([]byte("first"))
	f.Close()

	f, _ = m.Create("a.txt")
	f.Write([]byte("second"))
	f.Close()

	data, err := m.ReadFile("a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("ReadFile = %q, want %q", data, "second")
	}
}

func TestMemoryFileSystemExists(t *testing.T) {
	m := NewMemoryFileSystem()
	if m.Exists("missing") {
		t.Error("Exists(missing) = true before creation")
	}

	f, _ := m.Create("present")
	f.Close()
	if !m.Exists("present") {
		t.Error("Exists(present) = false after creation")
	}

	if err := m.MkdirAll("plots/run-1", 0o755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.Exists("plots") || !m.Exists("plots/run-1") {
		t.Error("MkdirAll did not register parent and leaf directories")
	}
}

func TestMemoryFileSystemReadMissing(t *testing.T) {
	m := NewMemoryFileSystem()
	if _, err := m.ReadFile("nope"); err == nil {
		t.Fatal("expected error reading missing file, got nil")
	}
}
