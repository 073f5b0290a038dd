// Package tui holds the interactive terminal prompts, built on bubbletea.
// Callers check IsInteractive before starting a program.
package tui
