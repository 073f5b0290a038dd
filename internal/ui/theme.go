package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)

// Theme renders text with the palette, or passes it through unchanged when
// color is disabled.
type Theme struct {
	enabled bool
}

// NewTheme returns a Theme that styles output only if w is a color terminal.
func NewTheme(w io.Writer) Theme {
	return Theme{enabled: ColorEnabled(w)}
}

// PlainTheme returns a Theme that never styles.
func PlainTheme() Theme {
	return Theme{}
}

// Enabled reports whether the theme emits styled output.
func (t Theme) Enabled() bool {
	return t.enabled
}

func (t Theme) Title(s string) string   { return t.render(titleStyle, s) }
func (t Theme) Success(s string) string { return t.render(successStyle, s) }
func (t Theme) Warning(s string) string { return t.render(warningStyle, s) }
func (t Theme) Error(s string) string   { return t.render(errorStyle, s) }
func (t Theme) Muted(s string) string   { return t.render(mutedStyle, s) }

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.enabled {
		return s
	}
	return style.Render(s)
}
