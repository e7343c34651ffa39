package insight

import (
	"fmt"
	"strings"

	"github.com/abhisek/persona/internal/session"
)

const systemPrompt = `You are a thoughtful coach who explains personality test results in warm, plain language. You never diagnose, never claim the result is fixed, and never mention that you are an AI.`

func buildUserMessage(o session.Outcome) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Result: %s (%s)\n", o.Result.Code, o.Type.Nickname)
	if o.Type.Tagline != "" {
		fmt.Fprintf(&b, "Tagline: %s\n", o.Type.Tagline)
	}
	fmt.Fprintf(&b, "Group: %s\n", o.Type.Group)

	b.WriteString("\nPreference breakdown:\n")
	for _, s := range o.Result.Breakdown() {
		d := s.Dichotomy
		fmt.Fprintf(&b, "- %s vs %s: %d-%d (%s, %s)\n",
			d.First.Name(), d.Second.Name(), s.FirstCount, s.SecondCount, s.Dominant, s.Clarity)
	}

	if len(o.Type.Strengths) > 0 {
		fmt.Fprintf(&b, "\nTypical strengths: %s\n", strings.Join(o.Type.Strengths, ", "))
	}
	if len(o.Type.Weaknesses) > 0 {
		fmt.Fprintf(&b, "Typical blind spots: %s\n", strings.Join(o.Type.Weaknesses, ", "))
	}

	b.WriteString(`
Instructions:
1. Write a headline that captures this specific result.
2. Reflect on how the four preferences work together. Where a dimension is Balanced or Slight, say the person may flex both ways.
3. Give up to three concrete growth tips tied to the blind spots above.
4. Use plain text. No markdown, no emoji.`)

	return b.String()
}
