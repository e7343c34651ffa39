package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput. Accept, when set, filters printable
// keys; rejected keys never reach the model.
type TextInput struct {
	Model  textinput.Model
	Accept func(r rune) bool
}

// NewTextInput creates a focused text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// NewCodeInput creates an input that takes up to four letters and
// upper-cases them as typed.
func NewCodeInput() TextInput {
	t := NewTextInput("e.g. INTJ", 4)
	t.Accept = func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return t
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && t.Accept != nil && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !t.Accept(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the trimmed, upper-cased input.
func (t TextInput) Value() string {
	return strings.ToUpper(strings.TrimSpace(t.Model.Value()))
}

// Reset clears the input.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
