package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func typeInto(t TextField, s string) TextField {
	t, _ = t.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return t
}

func TestTextField_TypingRequiresFocus(t *testing.T) {
	f := NewTextField("Name", "")
	f = typeInto(f, "ignored")
	assert.Equal(t, "", f.Value())

	f.Focus()
	f = typeInto(f, "  hello ")
	assert.Equal(t, "hello", f.Value())
	assert.True(t, f.IsFocused())

	f.Blur()
	assert.False(t, f.IsFocused())
}

func TestTextField_Validate(t *testing.T) {
	required := NewTextField("Base", "").WithRequired(true)
	assert.ErrorIs(t, required.Validate(), ErrFieldRequired)

	optional := NewTextField("Image", "")
	assert.NoError(t, optional.Validate())

	bad := errors.New("bad value")
	checked := NewTextField("Site", "").
		WithValue("nope").
		WithValidator(func(string) error { return bad })
	assert.ErrorIs(t, checked.Validate(), bad)
	assert.Contains(t, checked.View(), "bad value")
}

func TestTextField_EditClearsError(t *testing.T) {
	f := NewTextField("Base", "").WithRequired(true)
	f.Focus()
	assert.Error(t, f.Validate())

	f = typeInto(f, "x")
	assert.NoError(t, f.Error())
}

func TestTextField_ViewShowsLabelAndHint(t *testing.T) {
	f := NewTextField("Canonical base", "https://example.com").
		WithHint("Prefix of canonical URLs").
		WithRequired(true)

	view := f.View()
	assert.Contains(t, view, "Canonical base")
	assert.Contains(t, view, "Prefix of canonical URLs")
}
