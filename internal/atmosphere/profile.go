package atmosphere

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"

	"github.com/nkorzoun/corsikaIOreader/internal/units"
)

// profile is a tabulated atmosphere (CORSIKA atmprof format: altitude in
// km, density in g/cm^3, vertical thickness in g/cm^2, refraction index
// minus one). Thickness between table rows is interpolated with an Akima
// spline; outside the table range the edge values are held.
type profile struct {
	minCm  float64
	maxCm  float64
	spline interp.AkimaSpline
}

const minProfileRows = 5

// NewFromProfile loads a tabulated atmosphere profile. Lines starting with
// '#' are comments; each data row needs at least three columns. Rows must
// be ordered by increasing altitude.
func NewFromProfile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atmosphere profile: %w", err)
	}
	defer f.Close()

	var altCm, thick []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cols := strings.Fields(text)
		if len(cols) < 3 {
			return nil, fmt.Errorf("profile %s line %d: need at least 3 columns, got %d", path, line, len(cols))
		}
		altKm, err := strconv.ParseFloat(cols[0], 64)
		if err != nil {
			return nil, fmt.Errorf("profile %s line %d: bad altitude: %v", path, line, err)
		}
		t, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return nil, fmt.Errorf("profile %s line %d: bad thickness: %v", path, line, err)
		}
		altCm = append(altCm, units.MToCm(altKm*1000.))
		thick = append(thick, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read atmosphere profile: %w", err)
	}
	if len(altCm) < minProfileRows {
		return nil, fmt.Errorf("profile %s: only %d rows, need at least %d", path, len(altCm), minProfileRows)
	}

	p := &profile{minCm: altCm[0], maxCm: altCm[len(altCm)-1]}
	if err := p.spline.Fit(altCm, thick); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	// The table's lowest altitude doubles as the observation level.
	return &Model{
		id:       -1,
		obsLevel: units.CmToM(altCm[0]),
		profile:  p,
	}, nil
}

// thickness evaluates the spline, clamping heights outside the tabulated
// range to the table ends.
func (p *profile) thickness(heightCm float64) float64 {
	if heightCm <= p.minCm {
		heightCm = p.minCm
	}
	if heightCm >= p.maxCm {
		heightCm = p.maxCm
	}
	return p.spline.Predict(heightCm)
}
