package log

import (
	"fmt"
	"io"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr). A nil
// *Logger is safe to use and discards everything.
type Logger struct {
	Enabled bool
	W       io.Writer
}

// Printf writes a formatted message to W when the logger is non-nil and
// Enabled is true. It is a no-op otherwise.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
