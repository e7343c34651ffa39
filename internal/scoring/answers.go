package scoring

import "github.com/abhisek/persona/internal/dimension"

// AnswerSet maps a question ID to the single letter selected for it.
type AnswerSet map[int]dimension.Letter

// RecordAnswer returns a copy of set with questionID answered by l.
// Answering a question again replaces the earlier choice. The input set is
// never modified, so callers can keep older snapshots.
func RecordAnswer(set AnswerSet, questionID int, l dimension.Letter) AnswerSet {
	out := make(AnswerSet, len(set)+1)
	for id, v := range set {
		out[id] = v
	}
	out[questionID] = l
	return out
}

// Counts maps every dimension letter to the number of answers selecting it.
type Counts map[dimension.Letter]int

// NewCounts returns counts with all eight letters present at zero.
func NewCounts() Counts {
	c := make(Counts, 8)
	for _, l := range dimension.AllLetters() {
		c[l] = 0
	}
	return c
}

// Tally folds the answer set into per-letter counts.
func Tally(set AnswerSet) Counts {
	c := NewCounts()
	for _, l := range set {
		if _, ok := c[l]; ok {
			c[l]++
		}
	}
	return c
}
