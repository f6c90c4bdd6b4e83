// Package simio reads the decoded simulation stream the converter
// consumes. The upstream eventio decoding happens outside this module;
// what arrives here is one JSON object per line, in run order: a run
// header, then showers, each followed by its photon bunches.
package simio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nkorzoun/corsikaIOreader/internal/corsika"
)

// Event kinds carried by the stream.
const (
	KindRunHeader = "runheader"
	KindShower    = "shower"
	KindPhoton    = "photon"
)

// Event is one decoded simulation record.
type Event struct {
	Type string `json:"type"`

	// Block is the positional run header buffer; HeaderText the upstream
	// header's verbatim dump. Both only on runheader events.
	Block      []float64 `json:"block,omitempty"`
	HeaderText []string  `json:"header_text,omitempty"`

	Shower *corsika.Shower `json:"shower,omitempty"`
	Photon *corsika.Bunch  `json:"photon,omitempty"`
}

// Reader yields events one line at a time.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// maxLineBytes caps a single event line; run header blocks dominate.
const maxLineBytes = 1 << 20

// NewReader wraps r as an event stream.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Next returns the next event, io.EOF at the end of the stream. Blank
// lines and '#' comments are skipped. A malformed line is an error naming
// the line number; callers decide whether to skip or abort.
func (r *Reader) Next() (*Event, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var e Event
		if err := json.Unmarshal([]byte(text), &e); err != nil {
			return nil, fmt.Errorf("line %d: failed to unmarshal event: %v", r.line, err)
		}
		if err := validate(&e); err != nil {
			return nil, fmt.Errorf("line %d: %v", r.line, err)
		}
		return &e, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event stream: %w", err)
	}
	return nil, io.EOF
}

// Line returns the number of the last line consumed, for diagnostics.
func (r *Reader) Line() int {
	return r.line
}

func validate(e *Event) error {
	switch e.Type {
	case KindRunHeader:
		if e.Block == nil {
			return fmt.Errorf("runheader event without block")
		}
	case KindShower:
		if e.Shower == nil {
			return fmt.Errorf("shower event without shower record")
		}
	case KindPhoton:
		if e.Photon == nil {
			return fmt.Errorf("photon event without photon record")
		}
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}
