package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/thinktandem/seocheck/internal/cli"
	"github.com/thinktandem/seocheck/pkg/seocheck"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(seocheck.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(seocheck.ExitCodeForError(err))
	}
}
