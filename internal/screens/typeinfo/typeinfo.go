// Package typeinfo shows the full report for one type in a scrollable
// view.
package typeinfo

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/typedex"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/markdown"
)

// TypeScreen renders a typedex.Type as markdown inside a viewport.
type TypeScreen struct {
	typ      typedex.Type
	vp       viewport.Model
	width    int
	rendered string
}

var _ screen.Screen = (*TypeScreen)(nil)

// New creates a screen for t.
func New(t typedex.Type) *TypeScreen {
	return &TypeScreen{typ: t, vp: viewport.New()}
}

func (s *TypeScreen) Init() tea.Cmd {
	return nil
}

func (s *TypeScreen) Title() string {
	return s.typ.Code + " · " + s.typ.Nickname
}

func (s *TypeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

// render re-renders only when the width changes.
func (s *TypeScreen) render(width int) {
	if width == s.width && s.rendered != "" {
		return
	}
	s.width = width
	out, err := markdown.Render(s.typ.Markdown(), width-4, markdown.StyleDark)
	if err != nil {
		out = s.typ.Markdown()
	}
	s.rendered = out
	s.vp.SetContent(out)
}

func (s *TypeScreen) View(width, height int) string {
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.render(width)
	return s.vp.View()
}

func (s *TypeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}
