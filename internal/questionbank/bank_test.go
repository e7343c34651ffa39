package questionbank

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/persona/internal/dimension"
)

func TestDefaultBank(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 21, b.Len())
	assert.Equal(t, "v1.0.0", b.Version())

	counts := CountByDichotomy(b.Questions())
	assert.Equal(t, 5, counts[dimension.EI])
	assert.Equal(t, 5, counts[dimension.SN])
	assert.Equal(t, 5, counts[dimension.TF])
	assert.Equal(t, 6, counts[dimension.JP])

	q, ok := b.Get(11)
	require.True(t, ok)
	assert.Equal(t, dimension.TF, q.Dichotomy())
	assert.True(t, q.Offers(dimension.F))
	assert.False(t, q.Offers(dimension.E))
}

func TestDefaultIsParsedOnce(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestQuestionsReturnsCopy(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	qs := b.Questions()
	qs[0].Text = "mutated"
	qs[0], qs[1] = qs[1], qs[0]

	fresh := b.Questions()
	assert.NotEqual(t, "mutated", fresh[0].Text)
	assert.Equal(t, 1, fresh[0].ID)
}

const validDoc = `
version: v1.2.0
questions:
  - id: 1
    text: Pick one
    options:
      - {text: Out, value: E}
      - {text: In, value: I}
  - id: 2
    text: Pick another
    options:
      - {text: Plan, value: J}
      - {text: Flow, value: P}
`

func TestLoadValid(t *testing.T) {
	b, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	q, ok := b.Get(2)
	require.True(t, ok)
	assert.Equal(t, dimension.JP, q.Dichotomy())
	assert.Equal(t, 1, q.OptionIndex(dimension.P))
	assert.Equal(t, -1, q.OptionIndex(dimension.E))
}

func TestLoadReportsAllProblems(t *testing.T) {
	doc := `
version: v1.0.0
questions:
  - id: 1
    text: Fine
    options:
      - {text: a, value: E}
      - {text: b, value: I}
  - id: 1
    text: Duplicate id
    options:
      - {text: a, value: S}
      - {text: b, value: N}
  - id: 3
    text: Mixed pair
    options:
      - {text: a, value: E}
      - {text: b, value: S}
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBankUnavailable)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Len())
	assert.Contains(t, err.Error(), "duplicate id")
	assert.Contains(t, err.Error(), "single dichotomy")
}

func TestLoadMergesSchemaAndSemanticProblems(t *testing.T) {
	doc := `
version: v1.0.0
questions:
  - id: 1
    text: Three options
    options:
      - {text: a, value: E}
      - {text: b, value: I}
      - {text: c, value: E}
  - id: 2
    text: Mixed pair
    options:
      - {text: a, value: E}
      - {text: b, value: S}
  - id: 2
    text: Duplicate id
    options:
      - {text: a, value: T}
      - {text: b, value: F}
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBankUnavailable)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 3, verr.Len())
	assert.Contains(t, err.Error(), "maxItems")
	assert.Contains(t, err.Error(), "duplicate id")
	assert.Contains(t, err.Error(), "single dichotomy")
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unsupported major version",
			doc:  strings.Replace(validDoc, "v1.2.0", "v2.0.0", 1),
		},
		{
			name: "invalid version",
			doc:  strings.Replace(validDoc, "v1.2.0", "latest", 1),
		},
		{
			name: "three options",
			doc: `
version: v1.0.0
questions:
  - id: 1
    text: Too many
    options:
      - {text: a, value: E}
      - {text: b, value: I}
      - {text: c, value: E}
`,
		},
		{
			name: "unknown letter",
			doc: `
version: v1.0.0
questions:
  - id: 1
    text: Bad letter
    options:
      - {text: a, value: X}
      - {text: b, value: I}
`,
		},
		{
			name: "same letter twice",
			doc: `
version: v1.0.0
questions:
  - id: 1
    text: Same
    options:
      - {text: a, value: T}
      - {text: b, value: T}
`,
		},
		{
			name: "not yaml",
			doc:  "version: [unterminated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBankUnavailable)
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, doc := range []string{"", "   \n", "version: v1.0.0\nquestions: []\n"} {
		_, err := Load(strings.NewReader(doc))
		require.Error(t, err, "doc %q", doc)
		assert.ErrorIs(t, err, ErrEmptyBank)
		assert.ErrorIs(t, err, ErrBankUnavailable)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBankUnavailable)
}

func TestNewEmpty(t *testing.T) {
	_, err := New("v1.0.0", nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestCountByDichotomyIncludesAllPairs(t *testing.T) {
	got := CountByDichotomy(nil)
	want := map[dimension.Dichotomy]int{
		dimension.EI: 0, dimension.SN: 0, dimension.TF: 0, dimension.JP: 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountByDichotomy mismatch (-want +got):\n%s", diff)
	}
}

func TestQuestionsPerDichotomy(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)

	want := map[dimension.Dichotomy]int{
		dimension.EI: 5, dimension.SN: 5, dimension.TF: 5, dimension.JP: 6,
	}
	if diff := cmp.Diff(want, b.QuestionsPerDichotomy()); diff != "" {
		t.Fatalf("per-dichotomy counts (-want +got):\n%s", diff)
	}
}
