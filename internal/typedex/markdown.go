package typedex

import (
	"fmt"
	"strings"
)

// Markdown renders a type record as a markdown report.
func (t Type) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: %s\n\n", t.Code, t.Nickname)
	fmt.Fprintf(&b, "_%s_\n\n", t.Tagline)
	fmt.Fprintf(&b, "**Group:** %s\n\n", t.Group)
	b.WriteString(t.FullDescription)
	b.WriteString("\n\n")

	writeList(&b, "Strengths", t.Strengths)
	writeList(&b, "Weaknesses", t.Weaknesses)
	writeList(&b, "Career paths", t.Careers)
	writeList(&b, "Famous examples", t.Famous)

	b.WriteString("## Cognitive functions\n\n")
	fmt.Fprintf(&b, "1. Dominant: %s\n", t.Functions.Dominant)
	fmt.Fprintf(&b, "2. Auxiliary: %s\n", t.Functions.Auxiliary)
	fmt.Fprintf(&b, "3. Tertiary: %s\n", t.Functions.Tertiary)
	fmt.Fprintf(&b, "4. Inferior: %s\n", t.Functions.Inferior)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
