package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// EnvNoColor disables styled output when set to "1".
const EnvNoColor = "SEOCHECK_NO_COLOR"

// ColorEnabled reports whether styled output should be written to w.
//
// Returns false if:
//   - SEOCHECK_NO_COLOR=1 is set
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - w is not a terminal (files, pipes, buffers)
func ColorEnabled(w io.Writer) bool {
	if os.Getenv(EnvNoColor) == "1" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
