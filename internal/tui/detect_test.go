package tui

import "testing"

func TestDetectMode_EnvOverride(t *testing.T) {
	t.Setenv(EnvNonInteractive, "1")
	t.Setenv("CI", "")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv(EnvNonInteractive, "")
	t.Setenv("CI", "true")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestIsInteractive_ReturnsFalseInTests(t *testing.T) {
	// In test context, stdin/stdout are not terminals
	t.Setenv(EnvNonInteractive, "")
	t.Setenv("CI", "")

	if IsInteractive() {
		t.Error("IsInteractive() = true in test environment, want false")
	}
}
