package wizards

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thinktandem/seocheck/internal/config"
	"github.com/thinktandem/seocheck/internal/tui"
	"github.com/thinktandem/seocheck/internal/tui/components"
	"github.com/thinktandem/seocheck/internal/ui"
)

// InitResult holds the result of the init wizard.
type InitResult struct {
	Cancelled bool
	Values    config.TemplateValues
}

const (
	fieldCanonicalBase = iota
	fieldDefaultImage
	fieldTwitterSite
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Foreground(ui.ColorMuted).MarginTop(1)
)

// InitWizard asks for the project-specific values of a new seocheck.yaml.
type InitWizard struct {
	fields []components.TextField
	focus  int
	keys   tui.KeyMap
	result InitResult
	done   bool
}

// NewInitWizard creates a new init wizard, pre-filled with initial.
func NewInitWizard(initial config.TemplateValues) InitWizard {
	fields := []components.TextField{
		fieldCanonicalBase: components.NewTextField("Canonical base URL", "https://example.com").
			WithHint("Prefixed to every page path to build canonical URLs").
			WithRequired(true).
			WithValidator(validateBaseURL).
			WithValue(initial.CanonicalBase),
		fieldDefaultImage: components.NewTextField("Default Open Graph image", "/images/og.png").
			WithHint("Used when a page sets no image; leave empty to require one per page").
			WithValue(initial.DefaultImage),
		fieldTwitterSite: components.NewTextField("Twitter handle", "@ThinkTandem").
			WithHint("Leave empty to keep the default").
			WithValidator(validateHandle).
			WithValue(initial.TwitterSite),
	}
	fields[0].Focus()

	return InitWizard{
		fields: fields,
		keys:   tui.DefaultKeyMap(),
	}
}

func validateBaseURL(v string) error {
	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an absolute http(s) URL")
	}
	if strings.HasSuffix(v, "/") {
		return errors.New("leave off the trailing slash")
	}
	return nil
}

func validateHandle(v string) error {
	if !strings.HasPrefix(v, "@") || len(v) < 2 {
		return errors.New("a handle starts with @")
	}
	return nil
}

// Init implements tea.Model.
func (w InitWizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w InitWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch {
	case key.Matches(keyMsg, w.keys.Quit):
		w.result.Cancelled = true
		w.done = true
		return w, tea.Quit
	case key.Matches(keyMsg, w.keys.Next):
		cmd := w.moveFocus(1)
		return w, cmd
	case key.Matches(keyMsg, w.keys.Prev):
		cmd := w.moveFocus(-1)
		return w, cmd
	case key.Matches(keyMsg, w.keys.Submit):
		if err := w.fields[w.focus].Validate(); err != nil {
			return w, nil
		}
		if w.focus < len(w.fields)-1 {
			cmd := w.moveFocus(1)
			return w, cmd
		}
		return w.submit()
	}

	var cmd tea.Cmd
	w.fields[w.focus], cmd = w.fields[w.focus].Update(keyMsg)
	return w, cmd
}

// moveFocus shifts focus by delta, wrapping around.
func (w *InitWizard) moveFocus(delta int) tea.Cmd {
	w.fields[w.focus].Blur()
	w.focus = (w.focus + delta + len(w.fields)) % len(w.fields)
	return w.fields[w.focus].Focus()
}

func (w InitWizard) submit() (tea.Model, tea.Cmd) {
	for i := range w.fields {
		if err := w.fields[i].Validate(); err != nil {
			w.fields[w.focus].Blur()
			w.focus = i
			cmd := w.fields[i].Focus()
			return w, cmd
		}
	}

	w.result.Values = config.TemplateValues{
		CanonicalBase: w.fields[fieldCanonicalBase].Value(),
		DefaultImage:  w.fields[fieldDefaultImage].Value(),
		TwitterSite:   w.fields[fieldTwitterSite].Value(),
	}
	w.done = true
	return w, tea.Quit
}

// View implements tea.Model.
func (w InitWizard) View() string {
	if w.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("seocheck - New configuration"))
	b.WriteString("\n")
	for i := range w.fields {
		b.WriteString(w.fields[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render(w.keys.HelpText()))
	return b.String()
}

// Result returns the wizard's outcome once the program has quit.
func (w InitWizard) Result() InitResult {
	return w.result
}

// RunInitWizard executes the init wizard and returns the result.
func RunInitWizard(initial config.TemplateValues) (InitResult, error) {
	p := tea.NewProgram(NewInitWizard(initial))

	model, err := p.Run()
	if err != nil {
		return InitResult{Cancelled: true}, fmt.Errorf("init wizard: %w", err)
	}
	return model.(InitWizard).Result(), nil
}
