package questionbank

import (
	"errors"
	"fmt"

	"github.com/abhisek/persona/internal/dimension"
)

var (
	// ErrBankUnavailable is returned when the question bank could not be
	// loaded. Callers may retry.
	ErrBankUnavailable = errors.New("question bank could not be loaded")

	// ErrEmptyBank is returned when a bank has no questions.
	ErrEmptyBank = errors.New("question bank is empty")
)

// Bank is an immutable, ordered set of questions.
type Bank struct {
	version   string
	questions []Question
	byID      map[int]int
}

// New builds a Bank from already-parsed questions. The slice is copied.
func New(version string, questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrBankUnavailable, ErrEmptyBank)
	}
	if err := validateQuestions(version, questions); err != nil {
		return nil, err
	}

	b := &Bank{
		version:   version,
		questions: make([]Question, len(questions)),
		byID:      make(map[int]int, len(questions)),
	}
	copy(b.questions, questions)
	for i, q := range b.questions {
		b.byID[q.ID] = i
	}
	return b, nil
}

// Version returns the bank format version, e.g. "v1.0.0".
func (b *Bank) Version() string {
	return b.version
}

// Len returns the number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Questions returns the questions in canonical order. The returned slice is
// a copy; mutating it does not affect the bank.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Get returns the question with the given ID.
func (b *Bank) Get(id int) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// QuestionsPerDichotomy returns how many questions belong to each pair.
func (b *Bank) QuestionsPerDichotomy() map[dimension.Dichotomy]int {
	return CountByDichotomy(b.questions)
}
