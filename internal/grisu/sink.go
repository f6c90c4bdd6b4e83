// Package grisu emits the GrISU/kascade ASCII record format read by the
// downstream detector simulation: a descriptive run header block followed
// by one "S" line per shower, optional "C" supplement lines, and one "P"
// line per Cherenkov photon.
package grisu

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nkorzoun/corsikaIOreader/internal/fsutil"
)

// StdoutDestination is the literal destination string that selects
// standard output instead of a file.
const StdoutDestination = "stdout"

// defaultPrecision is the number of decimal digits for header values; the
// record lines override it to 7 per field.
const defaultPrecision = 4

// Sink is the single logical text destination every emitted line goes
// through. It is selected once and holds mutable formatting state
// (decimal precision and sign display), so one Sink must not be shared by
// concurrent emitters without external serialization.
type Sink struct {
	w        io.Writer
	closer   io.Closer
	prec     int
	showSign bool
}

// NewSink opens the destination named by dest: StdoutDestination selects
// standard output, anything else is a file path to create. A file that
// cannot be created is a fatal setup condition for the caller; no output
// has been produced at that point.
func NewSink(dest string) (*Sink, error) {
	return NewSinkFS(dest, fsutil.OSFileSystem{})
}

// NewSinkFS is NewSink with an explicit filesystem, for tests.
func NewSinkFS(dest string, fs fsutil.FileSystem) (*Sink, error) {
	if dest == StdoutDestination {
		return NewSinkWriter(os.Stdout), nil
	}
	f, err := fs.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("error opening outputfile %s: %w", dest, err)
	}
	s := NewSinkWriter(f)
	s.closer = f
	return s, nil
}

// NewSinkWriter wraps an existing writer as a sink.
func NewSinkWriter(w io.Writer) *Sink {
	return &Sink{w: w, prec: defaultPrecision}
}

// SetPrecision sets the number of decimal digits rendered by Float.
func (s *Sink) SetPrecision(p int) {
	s.prec = p
}

// ResetPrecision restores the default header precision.
func (s *Sink) ResetPrecision() {
	s.prec = defaultPrecision
}

// ShowSign toggles an explicit sign glyph on every numeric field,
// positive values included. Used by photon lines only.
func (s *Sink) ShowSign(on bool) {
	s.showSign = on
}

// Float renders v in fixed-point notation with the sink's current
// formatting state.
func (s *Sink) Float(v float64) string {
	if v == 0 {
		v = 0 // fold negative zero so transformed origins print unsigned
	}
	out := strconv.FormatFloat(v, 'f', s.prec, 64)
	if s.showSign && v >= 0 {
		out = "+" + out
	}
	return out
}

// Int renders v, honouring the sign-display state.
func (s *Sink) Int(v int) string {
	if s.showSign && v >= 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// Line writes one space-separated record line with a trailing terminator.
func (s *Sink) Line(fields ...string) error {
	_, err := fmt.Fprintln(s.w, strings.Join(fields, " "))
	return err
}

// Text writes one free-text line with a trailing terminator.
func (s *Sink) Text(line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// Writer exposes the raw destination for collaborators that print their
// own content, such as the upstream run header printer.
func (s *Sink) Writer() io.Writer {
	return s.w
}

// Close closes a file destination; closing a stdout sink is a no-op.
func (s *Sink) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
