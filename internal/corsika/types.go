// Package corsika holds the record types read from a CORSIKA simulation
// stream. The binary eventio decoding itself happens upstream; these are
// the already-decoded values the converter trusts and reproduces.
package corsika

import (
	"fmt"
	"io"
)

// Shower is the Monte Carlo truth for one simulated cascade. Angles follow
// the CORSIKA convention (degrees, azimuth counterclockwise); the record is
// immutable once received.
type Shower struct {
	Energy   float64 `json:"energy"` // TeV
	XCore    float64 `json:"xcore"`
	YCore    float64 `json:"ycore"`
	Azimuth  float64 `json:"azimuth"`  // deg
	Altitude float64 `json:"altitude"` // deg
	FirstInt float64 `json:"firstint"` // first interaction height
	ShowerID int     `json:"shower_id"`
}

// Bunch is a single Cherenkov photon record: position and direction
// cosines in the CORSIKA frame, emission height, arrival time (time since
// first interaction, not since emission) and wavelength in nm. Bunches are
// produced in high volume and are not retained after emission.
type Bunch struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	CX        float64 `json:"cx"`
	CY        float64 `json:"cy"`
	Zem       float64 `json:"zem"`
	CTime     float64 `json:"ctime"`
	Lambda    float64 `json:"lambda"` // nm
	Telescope int     `json:"telescope"`
}

// HeaderPrinter appends the upstream run header's own verbatim text to the
// output stream, between the START/END marker lines the writer emits.
type HeaderPrinter interface {
	PrintHeader(w io.Writer) error
}

// VerbatimHeader is a HeaderPrinter over already-captured header text, one
// entry per line.
type VerbatimHeader []string

// PrintHeader writes the captured lines unmodified.
func (v VerbatimHeader) PrintHeader(w io.Writer) error {
	for _, line := range v {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
