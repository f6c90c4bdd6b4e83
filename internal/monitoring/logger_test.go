package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLoggerCapturesOutput(t *testing.T) {
	defer SetLogger(nil)

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})
	Logf("skipping photon with %d fields", 3)
	if got != "skipping photon with 3 fields" {
		t.Errorf("captured %q", got)
	}
}

func TestSetLoggerNilIsNoop(t *testing.T) {
	SetLogger(nil)
	// Must not panic.
	Logf("dropped %s", "record")
}

func TestMuteRestores(t *testing.T) {
	calls := 0
	SetLogger(func(string, ...interface{}) { calls++ })

	restore := Mute()
	Logf("silenced")
	restore()
	Logf("audible")

	if calls != 1 {
		t.Errorf("logged %d times, want 1", calls)
	}
}
