package lookup

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/typedex"
)

func typeText(l *LookupScreen, s string) {
	for _, r := range s {
		l.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func enter(l *LookupScreen) tea.Cmd {
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	l := New()
	typeText(l, "enfp")

	cmd := enter(l)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Contains(t, msg.Screen.Title(), "ENFP")
	assert.NoError(t, l.err)
}

func TestLookupNotFound(t *testing.T) {
	l := New()
	typeText(l, "ABCD")

	assert.Nil(t, enter(l))
	assert.ErrorIs(t, l.err, typedex.ErrTypeNotFound)
	assert.Contains(t, l.View(80, 20), "Type not found")

	// Typing again clears the message.
	l.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.NoError(t, l.err)
}

func TestInputRejectsNonLetters(t *testing.T) {
	l := New()
	typeText(l, "I7N-TJX")

	assert.Equal(t, "INTJ", l.input.Value(), "digits and punctuation dropped, limit of four")
}

func TestEmptyInputIgnored(t *testing.T) {
	l := New()
	assert.Nil(t, enter(l))
	assert.NoError(t, l.err)
}
