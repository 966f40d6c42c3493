package log

import (
	"bytes"
	"testing"
)

func TestPrintf_Enabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: true, W: &buf}
	l.Printf("dropped %d candidates", 3)
	if got := buf.String(); got != "dropped 3 candidates\n" {
		t.Errorf("got %q", got)
	}
}

func TestPrintf_Disabled(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Enabled: false, W: &buf}
	l.Printf("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestPrintf_NilLogger(t *testing.T) {
	var l *Logger
	// Must not panic.
	l.Printf("ignored")
}
