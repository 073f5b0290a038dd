// Package ui holds the terminal presentation helpers shared by the CLI and
// the console logger: a small lipgloss palette and color detection.
package ui
