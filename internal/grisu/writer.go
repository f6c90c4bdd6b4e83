package grisu

import (
	"fmt"
	"math"

	"github.com/nkorzoun/corsikaIOreader/internal/atmosphere"
	"github.com/nkorzoun/corsikaIOreader/internal/coords"
	"github.com/nkorzoun/corsikaIOreader/internal/corsika"
	"github.com/nkorzoun/corsikaIOreader/internal/units"
)

// snapEpsilon suppresses rounding noise: direction cosines below this
// magnitude are reported as exactly 0.
const snapEpsilon = 1.e-8

// unknownEmitterID is written on every photon line; CORSIKA does not
// record which particle emitted a bunch.
const unknownEmitterID = 3

// recordPrecision is the per-field decimal precision of S, C and P lines.
const recordPrecision = 7

// Writer converts CORSIKA records into GrISU records and routes them
// through a single sink. Call order per run: WriteRunHeader once, then
// WriteShower once per event, then WritePhotons once per bunch of that
// event.
type Writer struct {
	sink    *Sink
	version string

	qeff      float64
	obsHeight float64 // m
	atm       *atmosphere.Model

	// Transformed core coordinates of the last shower. Frame-conversion
	// bookkeeping only; nothing reads them back.
	xoff, yoff float64
}

// NewWriter creates a record writer emitting through sink. The version tag
// appears in the header preamble. atm may be nil: the quantum efficiency
// placeholder and observation height then keep their defaults (1.0, 100 m)
// and supplemental lines report -1 slant depth. A non-nil model supplies
// the observation height itself.
func NewWriter(sink *Sink, version string, atm *atmosphere.Model) *Writer {
	w := &Writer{
		sink:      sink,
		version:   version,
		qeff:      1.0,
		obsHeight: atmosphere.DefaultObservationLevelM,
		atm:       atm,
	}
	if atm != nil {
		w.obsHeight = atm.ObservationLevel()
	}
	return w
}

// SetQeff overrides the quantum efficiency placeholder written in the
// header's R line.
func (w *Writer) SetQeff(q float64) {
	w.qeff = q
}

// WriteRunHeader emits the descriptive header block for one run: the HEADF
// preamble, run metadata from h, the upstream header's verbatim text via
// printer, and the closing DATAF/R/H lines. printer may be nil.
func (w *Writer) WriteRunHeader(h *corsika.RunHeader, printer corsika.HeaderPrinter) error {
	f := w.sink.Float

	ptype := "\t\t\t Type code for primary particle (kascade ID) "
	if kid, ok := KascadeID(h.PrimaryID); ok {
		ptype += fmt.Sprintf("%d", kid)
	} else {
		ptype += "\t unknown particle (for kascade)"
	}

	azKascade, _, _ := coords.Transform(h.Azimuth, 0, 0)

	lines := []string{
		"* HEADF  <-- Start of header flag",
		"",
		"photon list created with " + w.version,
		"",
		fmt.Sprintf("       Photons generated by CORSIKA  (date: %d)", h.Date),
		"",
		fmt.Sprintf("\t CORSIKA run number: %d", h.RunNumber),
		"\t CORSIKA version: " + f(h.Version),
		"",
		"",
		" TITLE OF RUN: ",
		fmt.Sprintf("\t\t\t Primary energy<min.,max.> TeV = %s\t%s",
			f(units.GeVToTeV(h.EnergyMin)), f(units.GeVToTeV(h.EnergyMax))),
		"\t\t\t Slope of energy spectrum: " + f(h.Slope),
		fmt.Sprintf("\t\t\t Type code for primary particle (CORSIKA ID) %d", h.PrimaryID),
		fmt.Sprintf("PTYPE: %d", h.PrimaryID),
		ptype,
		"\t\t\t Primary zenith angle  (CORSIKA coord.): " + f(units.RadToDeg(h.Zenith)),
		"\t\t\t Primary azimuth angle (CORSIKA coord.): " + f(units.RadToDeg(h.Azimuth)),
		"\t\t\t Primary zenith angle  (kascade coord.): " + f(units.RadToDeg(h.Zenith)),
		"\t\t\t Primary azimuth angle (kascade coord.): " + f(units.RadToDeg(azKascade)),
		fmt.Sprintf("\t\t\t Magnetic field (x/z): %s\t%s", f(h.MagneticX), f(h.MagneticZ)),
		"\t\t\t Observation height [m]: " + f(units.CmToM(h.ObsHeightCm)),
		fmt.Sprintf("\t\t\t Energy cuts (hadr./muon/el./phot.) [GeV]: %s\t%s\t%s\t%s",
			f(h.CutHadron), f(h.CutMuon), f(h.CutElectron), f(h.CutPhoton)),
		"CORSIKA RUN HEADER (START)",
	}
	for _, line := range lines {
		if err := w.sink.Text(line); err != nil {
			return err
		}
	}

	if printer != nil {
		if err := printer.PrintHeader(w.sink.Writer()); err != nil {
			return fmt.Errorf("failed to print upstream run header: %w", err)
		}
	}

	closing := []string{
		"CORSIKA RUN HEADER (END)",
		"",
		"* DATAF  <-- end of header flag",
		"R " + f(w.qeff),
		"H " + f(w.obsHeight),
	}
	for _, line := range closing {
		if err := w.sink.Text(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteShower emits the "S" line for one shower and, when
// includeSupplemental is set, the "C" line carrying first interaction
// height, slant depth and the shower id.
func (w *Writer) WriteShower(s corsika.Shower, includeSupplemental bool) error {
	az := units.DegToRad(s.Azimuth)
	ze := units.DegToRad(90. - s.Altitude)

	az2, x, y := coords.Transform(az, s.XCore, s.YCore)
	w.xoff, w.yoff = x, y

	dcos := math.Sin(ze) * math.Cos(az2)
	if math.Abs(dcos) < snapEpsilon {
		dcos = 0
	}
	dsin := math.Sin(ze) * math.Sin(az2)
	if math.Abs(dsin) < snapEpsilon {
		dsin = 0
	}

	w.sink.SetPrecision(recordPrecision)
	defer w.sink.ResetPrecision()
	f := w.sink.Float

	err := w.sink.Line("S",
		f(s.Energy), f(x), f(y), f(dcos), f(dsin), f(s.FirstInt),
		"-1", "-1", "-1")
	if err != nil {
		return err
	}

	if includeSupplemental {
		thick := -1.
		if w.atm != nil {
			thick = w.atm.Thickness(units.MToCm(s.FirstInt)) / math.Cos(ze)
		}
		return w.sink.Line("C", f(s.FirstInt), f(thick), w.sink.Int(s.ShowerID))
	}
	return nil
}

// WritePhotons emits the "P" line for one photon bunch hitting telescope
// tel (zero-based; the record carries it one-based). Every numeric field
// on this line carries an explicit sign glyph.
func (w *Writer) WritePhotons(b corsika.Bunch, tel int) error {
	az := math.Atan2(b.CY, b.CX)

	// Clamp the radicand: direction cosines from upstream may overshoot
	// unit length by rounding.
	ze := 1. - (b.CX*b.CX + b.CY*b.CY)
	if ze > 0 {
		ze = math.Sqrt(ze)
	} else {
		ze = 0
	}
	ze = math.Acos(ze)

	az2, x, y := coords.Transform(az, b.X, b.Y)

	w.sink.ShowSign(true)
	w.sink.SetPrecision(recordPrecision)
	defer func() {
		w.sink.ShowSign(false)
		w.sink.ResetPrecision()
	}()
	f := w.sink.Float

	return w.sink.Line("P",
		f(x), f(y),
		f(math.Sin(ze)*math.Cos(az2)), f(math.Sin(ze)*math.Sin(az2)),
		f(b.Zem), f(b.CTime),
		w.sink.Int(int(b.Lambda)),
		w.sink.Int(unknownEmitterID),
		w.sink.Int(tel+1))
}
