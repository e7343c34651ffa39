package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/typedex"
)

func TestRenderPlain(t *testing.T) {
	typ, err := typedex.Lookup("infj")
	require.NoError(t, err)

	out, err := Render(typ.Markdown(), 80, StylePlain)
	require.NoError(t, err)

	assert.Contains(t, out, "INFJ")
	assert.Contains(t, out, typ.Nickname)
	assert.Contains(t, out, "Strengths")
}

func TestRenderUnknownStyle(t *testing.T) {
	_, err := Render("# hi", 80, "no-such-style")
	assert.Error(t, err)
}
