// Package lookup finds a type by its four-letter code.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/typeinfo"
	"github.com/abhisek/persona/internal/typedex"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// LookupScreen reads a code and opens its report.
type LookupScreen struct {
	input components.TextInput
	err   error
}

var _ screen.Screen = (*LookupScreen)(nil)

// New creates the lookup screen.
func New() *LookupScreen {
	return &LookupScreen{input: components.NewCodeInput()}
}

func (l *LookupScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LookupScreen) Title() string {
	return "Look up a type"
}

func (l *LookupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		return l, l.submit()
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		l.err = nil
	}
	return l, cmd
}

func (l *LookupScreen) submit() tea.Cmd {
	code := l.input.Value()
	if code == "" {
		return nil
	}
	t, err := typedex.Lookup(code)
	if err != nil {
		l.err = err
		return nil
	}
	l.input.Reset()
	detail := typeinfo.New(t)
	return func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
}

func (l *LookupScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	lines := []string{
		theme.Body.Bold(true).Render("Enter a four-letter code"),
		"",
		l.input.View(),
		"",
	}
	switch {
	case errors.Is(l.err, typedex.ErrTypeNotFound):
		lines = append(lines, theme.ErrorText.Render(fmt.Sprintf("Type not found: %q", l.input.Value())))
	case l.err != nil:
		lines = append(lines, theme.ErrorText.Render(l.err.Error()))
	default:
		lines = append(lines, theme.Hint.Render("One letter from each pair: E/I, S/N, T/F, J/P"))
	}

	return components.Frame(components.Card(strings.Join(lines, "\n"), cw), width, height)
}

func (l *LookupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Look up"},
		{Key: "Esc", Description: "Back"},
	}
}
