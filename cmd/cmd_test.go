package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/persona/internal/questionbank"
	"github.com/abhisek/persona/internal/scoring"
	"github.com/abhisek/persona/internal/typedex"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs a fresh command tree and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PERSONA_LLM_PROVIDER", "PERSONA_LLM_MOCK_RESPONSE",
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY",
		"PERSONA_ANTHROPIC_API_KEY", "PERSONA_OPENAI_API_KEY",
		"PERSONA_GEMINI_API_KEY", "PERSONA_OPENROUTER_API_KEY",
		"PERSONA_OPENAI_MODEL", "PERSONA_OPENAI_BASE_URL",
	} {
		t.Setenv(k, "")
	}
}

// writeAnswers answers every bank question with the first letter of its
// pair, skipping the first skip questions.
func writeAnswers(t *testing.T, skip int) string {
	t.Helper()
	bank, err := questionbank.Default()
	require.NoError(t, err)

	var b strings.Builder
	b.WriteString("answers:\n")
	for _, q := range bank.Questions()[skip:] {
		fmt.Fprintf(&b, "  %d: %s\n", q.ID, strings.ToLower(string(q.Dichotomy().First)))
	}
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestTypesListsAllCodes(t *testing.T) {
	got, err := execute(t, "types")
	require.NoError(t, err)
	for _, code := range typedex.Codes() {
		assert.Contains(t, got, code)
	}
}

func TestTypeRaw(t *testing.T) {
	want, err := typedex.Lookup("INFP")
	require.NoError(t, err)

	got, err := execute(t, "type", "infp", "--raw")
	require.NoError(t, err)
	assert.Contains(t, got, want.Nickname)
	assert.Contains(t, got, "INFP")
}

func TestTypeRendered(t *testing.T) {
	got, err := execute(t, "type", "ENTJ", "--style", "notty", "--width", "60")
	require.NoError(t, err)
	assert.Contains(t, got, "ENTJ")
}

func TestTypeNotFound(t *testing.T) {
	_, err := execute(t, "type", "XYZW")
	assert.ErrorIs(t, err, typedex.ErrTypeNotFound)
}

func TestQuestionsSeededIsReproducible(t *testing.T) {
	first, err := execute(t, "questions", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "questions", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuestionsOrdered(t *testing.T) {
	bank, err := questionbank.Default()
	require.NoError(t, err)

	got, err := execute(t, "questions", "--ordered")
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	assert.Contains(t, lines[0], bank.Version())
	assert.Contains(t, lines[2], bank.Questions()[0].Text)
}

func TestQuestionsCustomBank(t *testing.T) {
	_, err := execute(t, "questions", "--bank", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, questionbank.ErrBankUnavailable)
}

func TestScoreText(t *testing.T) {
	got, err := execute(t, "score", writeAnswers(t, 0))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "ESTJ"), got)
	assert.Contains(t, got, "Very Strong")
	assert.Contains(t, got, "Extraversion vs Introversion")
}

func TestScoreUnknownQuestion(t *testing.T) {
	path := writeAnswers(t, 1)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteString("  999: E\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = execute(t, "score", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 999 is not in bank")
}

func TestScoreYAML(t *testing.T) {
	got, err := execute(t, "score", writeAnswers(t, 0), "-o", "yaml")
	require.NoError(t, err)

	var report scoreReport
	require.NoError(t, yaml.Unmarshal([]byte(got), &report))
	assert.Equal(t, "ESTJ", report.Code)
	require.Len(t, report.Breakdown, 4)
	assert.Equal(t, "EI", report.Breakdown[0].Pair)
	assert.Equal(t, 0, report.Breakdown[0].Second)
}

func TestScoreIncomplete(t *testing.T) {
	_, err := execute(t, "score", writeAnswers(t, 1))
	assert.ErrorIs(t, err, scoring.ErrIncompleteAnswers)
}

func TestScoreUnknownFormat(t *testing.T) {
	_, err := execute(t, "score", writeAnswers(t, 0), "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestScoreReflectWithMock(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PERSONA_LLM_PROVIDER", "mock")
	t.Setenv("PERSONA_LLM_MOCK_RESPONSE",
		`{"headline":"Steady hands","reflection":"You like a plan.","growth_tips":["Leave room for surprises."]}`)

	got, err := execute(t, "score", writeAnswers(t, 0), "--reflect",
		"--log-file", filepath.Join(t.TempDir(), "persona.log"))
	require.NoError(t, err)
	assert.Contains(t, got, "Steady hands")
	assert.Contains(t, got, "Leave room for surprises.")
}

func TestLLMStatus(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		clearProviderEnv(t)
		got, err := execute(t, "llm", "status")
		require.NoError(t, err)
		assert.Contains(t, got, "Reflections disabled")
	})

	t.Run("openai key is not printed", func(t *testing.T) {
		clearProviderEnv(t)
		t.Setenv("PERSONA_LLM_PROVIDER", "openai")
		t.Setenv("PERSONA_OPENAI_API_KEY", "sk-very-secret")

		got, err := execute(t, "llm", "status")
		require.NoError(t, err)
		assert.Contains(t, got, "Provider:  openai")
		assert.Contains(t, got, "Model:     gpt-4o-mini")
		assert.NotContains(t, got, "sk-very-secret")
	})
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, got, "persona (devel)")
	assert.Contains(t, got, "question bank")
}
