// Package diag renders optional diagnostics for a conversion run: a polar
// scatter of transformed photon impact points and a wavelength histogram.
// Purely observational; the emitted record stream never depends on it.
package diag

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxScatterPoints bounds the HTML payload; beyond it the recorder keeps
// every n-th photon.
const maxScatterPoints = 8000

// histogramBins is the fixed bin count of the wavelength histogram.
const histogramBins = 30

// Recorder accumulates photon samples during a run and renders them into
// the output directory afterwards. Not safe for concurrent use.
type Recorder struct {
	dir     string
	xs, ys  []float64
	lambdas plotter.Values

	seen   int
	stride int
}

// NewRecorder creates a recorder writing into dir.
func NewRecorder(dir string) *Recorder {
	return &Recorder{dir: dir, stride: 1}
}

// AddPhoton records one transformed photon impact point and its
// wavelength in nm.
func (r *Recorder) AddPhoton(x, y, lambdaNm float64) {
	r.seen++
	if r.seen%r.stride != 0 {
		return
	}
	r.xs = append(r.xs, x)
	r.ys = append(r.ys, y)
	r.lambdas = append(r.lambdas, lambdaNm)

	// Thin retroactively once over budget so early photons do not crowd
	// out late ones.
	if len(r.xs) > maxScatterPoints {
		r.stride *= 2
		r.xs = thin(r.xs)
		r.ys = thin(r.ys)
		r.lambdas = thin(r.lambdas)
	}
}

func thin[S ~[]float64](s S) S {
	kept := s[:0]
	for i := 0; i < len(s); i += 2 {
		kept = append(kept, s[i])
	}
	return kept
}

// Count returns the number of photons seen so far.
func (r *Recorder) Count() int {
	return r.seen
}

// WritePlots renders the accumulated samples. With no samples it writes
// nothing and succeeds.
func (r *Recorder) WritePlots() error {
	if r.seen == 0 {
		return nil
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create plots dir: %w", err)
	}
	if err := r.writeImpactScatter(); err != nil {
		return err
	}
	return r.writeWavelengthHistogram()
}

// writeImpactScatter renders the photon impact points in the kascade
// frame as an HTML scatter.
func (r *Recorder) writeImpactScatter() error {
	data := make([]opts.ScatterData, 0, len(r.xs))
	maxAbs := 0.0
	for i := range r.xs {
		data = append(data, opts.ScatterData{Value: []interface{}{r.xs[i], r.ys[i]}})
		if v := math.Abs(r.xs[i]); v > maxAbs {
			maxAbs = v
		}
		if v := math.Abs(r.ys[i]); v > maxAbs {
			maxAbs = v
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Photon impact points (kascade frame)",
			Subtitle: fmt.Sprintf("%d photons, %d plotted", r.seen, len(data)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Min: -maxAbs, Max: maxAbs, Name: "x east"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -maxAbs, Max: maxAbs, Name: "y south"}),
	)
	scatter.AddSeries("photons", data)

	path := filepath.Join(r.dir, "impact_points.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("failed to render impact scatter: %w", err)
	}
	return nil
}

// writeWavelengthHistogram renders the photon wavelength distribution as
// a PNG.
func (r *Recorder) writeWavelengthHistogram() error {
	p := plot.New()
	p.Title.Text = "Cherenkov photon wavelengths"
	p.X.Label.Text = "wavelength [nm]"
	p.Y.Label.Text = "photons"

	h, err := plotter.NewHist(r.lambdas, histogramBins)
	if err != nil {
		return fmt.Errorf("failed to build wavelength histogram: %w", err)
	}
	p.Add(h)

	path := filepath.Join(r.dir, "wavelengths.png")
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
