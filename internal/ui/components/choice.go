package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/ui/theme"
)

// Choice is a single-select list of answers. Chosen marks an answer that
// was recorded earlier (-1 for none) so it can be shown when the user
// navigates back.
type Choice struct {
	Prompt    string
	Options   []string
	Cursor    int
	Chosen    int
	Submitted bool
}

// NewChoice creates a choice with the cursor on the recorded answer, if
// any.
func NewChoice(prompt string, options []string, chosen int) Choice {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	} else {
		chosen = -1
	}
	return Choice{
		Prompt:  prompt,
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Update moves the cursor and submits on enter. Number keys select and
// submit directly.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter":
		c.Submitted = true
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(c.Options) {
			c.Cursor = int(key[0] - '1')
			c.Submitted = true
		}
	}

	return c, nil
}

// View renders the prompt followed by the options.
func (c Choice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width).
		Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if i == c.Chosen {
			line += "  ✓"
		}

		style := theme.Unselected
		switch {
		case i == c.Cursor:
			style = theme.Selected
		case i == c.Chosen:
			style = theme.Chosen
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
