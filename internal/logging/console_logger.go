package logging

import (
	"fmt"
	"io"
	"sync"

	"github.com/thinktandem/seocheck/internal/ui"
)

// ConsoleLogger writes log messages to a writer, usually the command's stderr.
// Prefixes are colored when the writer is a terminal.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	theme   ui.Theme
	mu      sync.Mutex
}

// NewWriterLogger creates a ConsoleLogger writing to w.
// If verbose is false, Verbose() calls are no-ops.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     w,
		verbose: verbose,
		theme:   ui.NewTheme(w),
	}
}

// Verbose logs per-file diagnostics if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.theme.Muted("[VERBOSE] "), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.theme.Error("[ERROR] "), format, args)
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, prefix+msg+"\n")
}
