package wizards

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinktandem/seocheck/internal/config"
)

func send(t *testing.T, w InitWizard, msgs ...tea.Msg) (InitWizard, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = w.Update(msg)
		w = model.(InitWizard)
	}
	return w, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	esc      = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestInitWizard_CompletesWithAllValues(t *testing.T) {
	w := NewInitWizard(config.TemplateValues{})

	w, cmd := send(t, w,
		runes("https://example.com"), enter,
		runes("/images/og.png"), enter,
		runes("@example"), enter,
	)

	require.NotNil(t, cmd)
	assert.False(t, w.Result().Cancelled)
	assert.Equal(t, config.TemplateValues{
		CanonicalBase: "https://example.com",
		DefaultImage:  "/images/og.png",
		TwitterSite:   "@example",
	}, w.Result().Values)
	assert.Empty(t, w.View())
}

func TestInitWizard_RequiredBaseBlocksEnter(t *testing.T) {
	w := NewInitWizard(config.TemplateValues{})

	w, _ = send(t, w, enter)

	assert.Equal(t, fieldCanonicalBase, w.focus)
	assert.Contains(t, w.View(), "this field is required")
}

func TestInitWizard_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"relative URL", "example.com", "absolute http(s) URL"},
		{"trailing slash", "https://example.com/", "trailing slash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewInitWizard(config.TemplateValues{})
			w, _ = send(t, w, runes(tt.input), enter)

			assert.Equal(t, fieldCanonicalBase, w.focus)
			assert.Contains(t, w.View(), tt.want)
		})
	}

	w := NewInitWizard(config.TemplateValues{CanonicalBase: "https://example.com"})
	w, _ = send(t, w, tab, tab, runes("nohandle"), enter)
	assert.Equal(t, fieldTwitterSite, w.focus)
	assert.Contains(t, w.View(), "starts with @")
}

func TestInitWizard_OptionalFieldsMayStayEmpty(t *testing.T) {
	w := NewInitWizard(config.TemplateValues{CanonicalBase: "https://example.com"})

	w, _ = send(t, w, enter, enter, enter)

	assert.False(t, w.Result().Cancelled)
	assert.Equal(t, config.TemplateValues{CanonicalBase: "https://example.com"}, w.Result().Values)
}

func TestInitWizard_FocusWraps(t *testing.T) {
	w := NewInitWizard(config.TemplateValues{})

	w, _ = send(t, w, shiftTab)
	assert.Equal(t, fieldTwitterSite, w.focus)

	w, _ = send(t, w, tab)
	assert.Equal(t, fieldCanonicalBase, w.focus)
}

func TestInitWizard_Cancel(t *testing.T) {
	w := NewInitWizard(config.TemplateValues{})

	w, cmd := send(t, w, runes("https://example.com"), esc)

	require.NotNil(t, cmd)
	assert.True(t, w.Result().Cancelled)
}

func TestInitWizard_IgnoresOtherMessages(t *testing.T) {
	w := NewInitWizard(config.TemplateValues{})

	w, cmd := send(t, w, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Nil(t, cmd)
	assert.Contains(t, w.View(), "Canonical base URL")
}
