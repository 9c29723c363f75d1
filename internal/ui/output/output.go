// Package output sets up the terminal writer behind folio's pretty log
// handler, the one that prints build phases and per-file failures.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile is the profile folio log lines render with: plain text when
// NO_COLOR is set, the detected terminal profile otherwise.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New wraps w for the log handler, stderr when w is nil. The writer is
// always treated as a terminal; only ColorProfile decides whether colors
// are emitted.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(ColorProfile()), termenv.WithTTY(true))
}
