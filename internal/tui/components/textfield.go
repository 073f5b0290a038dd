package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thinktandem/seocheck/internal/ui"
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle         = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	focusedInputStyle = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	errorStyle        = lipgloss.NewStyle().Foreground(ui.ColorError)
)

// TextField is a labeled text input with optional validation.
type TextField struct {
	label     string
	hint      string
	input     textinput.Model
	focused   bool
	required  bool
	validator func(string) error
	err       error
}

// NewTextField creates a new text field.
func NewTextField(label, placeholder string) TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 48

	return TextField{label: label, input: ti}
}

// WithHint sets a one-line explanation shown under the label.
func (t TextField) WithHint(hint string) TextField {
	t.hint = hint
	return t
}

// WithRequired marks the field as required.
func (t TextField) WithRequired(required bool) TextField {
	t.required = required
	return t
}

// WithValidator sets a validation function. It is not called for an empty
// optional field.
func (t TextField) WithValidator(fn func(string) error) TextField {
	t.validator = fn
	return t
}

// WithValue sets the initial value.
func (t TextField) WithValue(value string) TextField {
	t.input.SetValue(value)
	return t
}

// Focus focuses the text field.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes focus from the text field.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// IsFocused returns true if the field is focused.
func (t TextField) IsFocused() bool {
	return t.focused
}

// Update forwards msg to the input. A previous validation error is cleared
// once the value changes.
func (t TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if t.input.Value() != before {
		t.err = nil
	}
	return t, cmd
}

// View renders the field.
func (t TextField) View() string {
	var b strings.Builder

	label := t.label
	if t.required {
		label += errorStyle.Render(" *")
	}
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	if t.hint != "" {
		b.WriteString(hintStyle.Render(t.hint))
		b.WriteString("\n")
	}

	if t.focused {
		b.WriteString(focusedInputStyle.Render(t.input.View()))
	} else {
		b.WriteString(t.input.View())
	}

	if t.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(t.err.Error()))
	}
	return b.String()
}

// Value returns the trimmed current value.
func (t TextField) Value() string {
	return strings.TrimSpace(t.input.Value())
}

// Error returns the current validation error.
func (t TextField) Error() error {
	return t.err
}

// Validate runs validation and returns any error.
func (t *TextField) Validate() error {
	v := t.Value()
	switch {
	case v == "" && t.required:
		t.err = ErrFieldRequired
	case v != "" && t.validator != nil:
		t.err = t.validator(v)
	default:
		t.err = nil
	}
	return t.err
}

// ErrFieldRequired is returned when a required field is empty.
var ErrFieldRequired = fieldError("this field is required")

type fieldError string

func (e fieldError) Error() string { return string(e) }
