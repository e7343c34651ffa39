package scoring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/persona/internal/dimension"
	"github.com/abhisek/persona/internal/questionbank"
)

var (
	// ErrIncompleteAnswers is returned when scoring an answer set that does
	// not have exactly one answer per question.
	ErrIncompleteAnswers = errors.New("incomplete answers")

	// ErrInvalidAnswer is returned when an answer does not match any option
	// of its question.
	ErrInvalidAnswer = errors.New("invalid answer")
)

// Result is the outcome of scoring a completed answer set.
type Result struct {
	// Code is the four-letter result code, e.g. "ESTJ".
	Code string

	// Counts holds the tally for all eight letters.
	Counts Counts

	// PerDichotomy is the number of questions belonging to each pair.
	// Display only; it plays no part in choosing the code.
	PerDichotomy map[dimension.Dichotomy]int
}

// Score resolves a completed answer set into a result code.
//
// Each dichotomy is decided by simple majority. An exact tie goes to the
// first letter of the pair (E, S, T, J).
func Score(answers AnswerSet, questions []questionbank.Question) (Result, error) {
	if len(questions) == 0 {
		return Result{}, questionbank.ErrEmptyBank
	}
	if len(answers) != len(questions) {
		return Result{}, fmt.Errorf("%w: %d of %d questions answered",
			ErrIncompleteAnswers, len(answers), len(questions))
	}

	for _, q := range questions {
		l, ok := answers[q.ID]
		if !ok {
			return Result{}, fmt.Errorf("%w: question %d has no answer", ErrIncompleteAnswers, q.ID)
		}
		if !q.Offers(l) {
			return Result{}, fmt.Errorf("%w: %q is not an option of question %d", ErrInvalidAnswer, l, q.ID)
		}
	}

	counts := Tally(answers)
	return Result{
		Code:         resolve(counts),
		Counts:       counts,
		PerDichotomy: questionbank.CountByDichotomy(questions),
	}, nil
}

func resolve(c Counts) string {
	var b strings.Builder
	for _, d := range dimension.AllDichotomies() {
		if c[d.First] >= c[d.Second] {
			b.WriteString(string(d.First))
		} else {
			b.WriteString(string(d.Second))
		}
	}
	return b.String()
}

// Letter returns the letter chosen for d.
func (r Result) Letter(d dimension.Dichotomy) dimension.Letter {
	if r.Counts[d.First] >= r.Counts[d.Second] {
		return d.First
	}
	return d.Second
}
