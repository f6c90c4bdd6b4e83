package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nkorzoun/corsikaIOreader/internal/config"
	"github.com/nkorzoun/corsikaIOreader/internal/grisu"
	"github.com/nkorzoun/corsikaIOreader/internal/monitoring"
	"github.com/nkorzoun/corsikaIOreader/internal/simio"
	"github.com/nkorzoun/corsikaIOreader/internal/stats"
	"github.com/nkorzoun/corsikaIOreader/internal/testutil"
)

func fixtureStream() string {
	block := make([]string, 273)
	for i := range block {
		block[i] = "0"
	}
	block[2] = "1"     // gamma primary
	block[43] = "4711" // run number
	var b strings.Builder
	b.WriteString(`{"type":"runheader","block":[` + strings.Join(block, ",") + `],"header_text":["RUNH 4711"]}` + "\n")
	b.WriteString(`{"type":"shower","shower":{"energy":1.0,"azimuth":0,"altitude":90,"firstint":10.0,"shower_id":1}}` + "\n")
	b.WriteString(`{"type":"photon","photon":{"x":1,"y":2,"cx":0,"cy":0,"zem":5,"ctime":12.5,"lambda":450.7,"telescope":0}}` + "\n")
	b.WriteString(`{"type":"photon","photon":{"x":-1,"y":0,"cx":0,"cy":0,"zem":6,"ctime":13.5,"lambda":321,"telescope":1}}` + "\n")
	return b.String()
}

func TestConvertEndToEnd(t *testing.T) {
	defer monitoring.Mute()()

	var out bytes.Buffer
	writer := grisu.NewWriter(grisu.NewSinkWriter(&out), "corsikaIOreader test", nil)

	summaryDB, err := stats.Open(filepath.Join(t.TempDir(), "stats.db"))
	testutil.AssertNoError(t, err)
	defer summaryDB.Close()

	r := simio.NewReader(strings.NewReader(fixtureStream()))
	testutil.AssertNoError(t, convert(r, writer, config.Empty(), summaryDB, nil))

	lines := testutil.Lines(out.String())
	if lines[0] != "* HEADF  <-- Start of header flag" {
		t.Errorf("first line = %q, want header flag", lines[0])
	}

	var showerLine, photonLines []string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "S "):
			showerLine = append(showerLine, l)
		case strings.HasPrefix(l, "P "):
			photonLines = append(photonLines, l)
		}
	}
	if len(showerLine) != 1 || len(photonLines) != 2 {
		t.Fatalf("got %d shower and %d photon lines, want 1 and 2", len(showerLine), len(photonLines))
	}
	if want := "S 1.0000000 0.0000000 0.0000000 0.0000000 0.0000000 10.0000000 -1 -1 -1"; showerLine[0] != want {
		t.Errorf("shower line = %q, want %q", showerLine[0], want)
	}
	if want := "P -2.0000000 -1.0000000 +0.0000000 +0.0000000 +5.0000000 +12.5000000 +450 +3 +1"; photonLines[0] != want {
		t.Errorf("photon line = %q, want %q", photonLines[0], want)
	}
	if !strings.HasSuffix(photonLines[1], " +321 +3 +2") {
		t.Errorf("second photon line = %q, want wavelength 321 at telescope 2", photonLines[1])
	}

	s, err := summaryDB.SessionSummary()
	testutil.AssertNoError(t, err)
	if s.Showers != 1 || s.Photons != 2 {
		t.Errorf("summary = %+v, want 1 shower with 2 photons", s)
	}
}

func TestConvertSkipsMalformedLines(t *testing.T) {
	defer monitoring.Mute()()

	var out bytes.Buffer
	writer := grisu.NewWriter(grisu.NewSinkWriter(&out), "test", nil)

	stream := "not json\n" +
		`{"type":"shower","shower":{"energy":2.0,"azimuth":0,"altitude":90,"firstint":5.0,"shower_id":9}}` + "\n"
	r := simio.NewReader(strings.NewReader(stream))
	testutil.AssertNoError(t, convert(r, writer, config.Empty(), nil, nil))

	if !strings.Contains(out.String(), "S 2.0000000 ") {
		t.Errorf("shower after malformed line was not emitted: %q", out.String())
	}
}

func TestConvertRejectsShortHeaderBlock(t *testing.T) {
	defer monitoring.Mute()()

	var out bytes.Buffer
	writer := grisu.NewWriter(grisu.NewSinkWriter(&out), "test", nil)

	r := simio.NewReader(strings.NewReader(`{"type":"runheader","block":[1,2,3]}` + "\n"))
	testutil.AssertError(t, convert(r, writer, config.Empty(), nil, nil))
}
