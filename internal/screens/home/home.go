// Package home is the main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// Destinations builds the screens reachable from the menu. A nil factory
// disables its item.
type Destinations struct {
	TakeTest func() screen.Screen
	Browse   func() screen.Screen
	Lookup   func() screen.Screen
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(dest Destinations) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Take the test", Hint: "answer each question, one at a time", Action: push(dest.TakeTest), Disabled: dest.TakeTest == nil},
		{Label: "Browse all 16 types", Action: push(dest.Browse), Disabled: dest.Browse == nil},
		{Label: "Look up a type", Hint: "by its four-letter code", Action: push(dest.Lookup), Disabled: dest.Lookup == nil},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func push(factory func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		if factory == nil {
			return nil
		}
		s := factory()
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	intro := lipgloss.NewStyle().Width(cw).Foreground(theme.TextDim).Render(
		"Answer a short questionnaire and see which of the sixteen types fits you best. " +
			"There are no right or wrong answers.")

	content := strings.Join([]string{
		theme.Title.Width(cw).Render("Persona"),
		"",
		intro,
		"",
		h.menu.View(),
	}, "\n")
	return components.Frame(content, width, height)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}
