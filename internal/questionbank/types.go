package questionbank

import "github.com/abhisek/persona/internal/dimension"

// Option is one selectable answer to a question.
type Option struct {
	Text   string
	Letter dimension.Letter
}

// Question is a single prompt with exactly two options, one from each side
// of a single dichotomy.
type Question struct {
	ID      int
	Text    string
	Options [2]Option
}

// Dichotomy returns the pair the question measures.
func (q Question) Dichotomy() dimension.Dichotomy {
	d, _ := dimension.DichotomyOf(q.Options[0].Letter)
	return d
}

// Offers reports whether l is one of the question's options.
func (q Question) Offers(l dimension.Letter) bool {
	return q.Options[0].Letter == l || q.Options[1].Letter == l
}

// OptionIndex returns the index of the option carrying l, or -1.
func (q Question) OptionIndex(l dimension.Letter) int {
	for i, o := range q.Options {
		if o.Letter == l {
			return i
		}
	}
	return -1
}

// CountByDichotomy returns how many of the given questions belong to each
// dichotomy. All four pairs are present in the result.
func CountByDichotomy(questions []Question) map[dimension.Dichotomy]int {
	counts := make(map[dimension.Dichotomy]int, 4)
	for _, d := range dimension.AllDichotomies() {
		counts[d] = 0
	}
	for _, q := range questions {
		counts[q.Dichotomy()]++
	}
	return counts
}
