package scoring

import "github.com/abhisek/persona/internal/dimension"

// Clarity describes how decisively a dichotomy was resolved.
type Clarity string

const (
	ClarityBalanced   Clarity = "Balanced"
	ClaritySlight     Clarity = "Slight"
	ClarityClear      Clarity = "Clear"
	ClarityVeryStrong Clarity = "Very Strong"
)

// DichotomyScore is the display breakdown for one pair.
type DichotomyScore struct {
	Dichotomy     dimension.Dichotomy
	FirstCount    int
	SecondCount   int
	Questions     int
	Dominant      dimension.Letter
	FirstPercent  float64
	SecondPercent float64
	Clarity       Clarity
}

// Breakdown returns per-pair proportions and clarity labels in code order.
func (r Result) Breakdown() []DichotomyScore {
	out := make([]DichotomyScore, 0, 4)
	for _, d := range dimension.AllDichotomies() {
		a, b := r.Counts[d.First], r.Counts[d.Second]
		total := a + b
		if total == 0 {
			total = 1
		}
		n := r.PerDichotomy[d]
		out = append(out, DichotomyScore{
			Dichotomy:     d,
			FirstCount:    a,
			SecondCount:   b,
			Questions:     n,
			Dominant:      r.Letter(d),
			FirstPercent:  float64(a) / float64(total) * 100,
			SecondPercent: float64(b) / float64(total) * 100,
			Clarity:       ClarityOf(a, b, n),
		})
	}
	return out
}

// ClarityOf labels the margin between two counts relative to the number of
// questions in the pair.
func ClarityOf(a, b, questions int) Clarity {
	if questions <= 0 {
		return ClarityBalanced
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	pct := float64(diff) / float64(questions) * 100
	switch {
	case pct > 60:
		return ClarityVeryStrong
	case pct > 30:
		return ClarityClear
	case pct > 10:
		return ClaritySlight
	default:
		return ClarityBalanced
	}
}
