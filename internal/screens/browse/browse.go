// Package browse lists the sixteen types grouped by temperament.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/typeinfo"
	"github.com/abhisek/persona/internal/typedex"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// BrowseScreen is a 4x4 grid of types; each row is one group.
type BrowseScreen struct {
	types  []typedex.Type
	cursor int
}

var _ screen.Screen = (*BrowseScreen)(nil)

// New creates the catalogue screen.
func New() *BrowseScreen {
	return &BrowseScreen{types: typedex.All()}
}

func (b *BrowseScreen) Init() tea.Cmd { return nil }

func (b *BrowseScreen) Title() string { return "All types" }

const cols = 4

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return b, nil
	}
	n := len(b.types)
	switch k.String() {
	case "left", "h":
		if b.cursor%cols > 0 {
			b.cursor--
		}
	case "right", "l":
		if b.cursor%cols < cols-1 && b.cursor+1 < n {
			b.cursor++
		}
	case "up", "k":
		if b.cursor-cols >= 0 {
			b.cursor -= cols
		}
	case "down", "j":
		if b.cursor+cols < n {
			b.cursor += cols
		}
	case "enter":
		if n == 0 {
			return b, nil
		}
		detail := typeinfo.New(b.types[b.cursor])
		return b, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
	}
	return b, nil
}

// Selected returns the type under the cursor.
func (b *BrowseScreen) Selected() typedex.Type {
	return b.types[b.cursor]
}

func (b *BrowseScreen) View(width, height int) string {
	cellWidth := max((width-8)/cols, 14)
	var rows []string
	for start := 0; start < len(b.types); start += cols {
		end := min(start+cols, len(b.types))
		group := string(b.types[start].Group)
		label := lipgloss.NewStyle().
			Foreground(theme.GroupColor(group)).
			Bold(true).
			Render(group + "s")

		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, b.cell(i, cellWidth))
		}
		rows = append(rows, label, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sel := b.Selected()
	footer := theme.Hint.Render(fmt.Sprintf("%s: %s", sel.Code, sel.Tagline))

	content := strings.Join(rows, "\n") + "\n\n" + footer
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (b *BrowseScreen) cell(i, width int) string {
	t := b.types[i]
	style := lipgloss.NewStyle().
		Width(width - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Align(lipgloss.Center)
	if i == b.cursor {
		style = style.BorderForeground(theme.GroupColor(string(t.Group))).Bold(true)
	}
	return style.Render(t.Code + "\n" + theme.Hint.Render(t.Nickname))
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}
