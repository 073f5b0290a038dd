package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNonInteractive disables prompts when set to "1".
const EnvNonInteractive = "SEOCHECK_NON_INTERACTIVE"

// Mode represents the interaction mode.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether seocheck may prompt the user.
//
// Returns ModeNonInteractive if:
//   - SEOCHECK_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
