package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/dimension"
	"github.com/abhisek/persona/internal/questionbank"
	"github.com/abhisek/persona/internal/scoring"
	"github.com/abhisek/persona/internal/typedex"
)

// ErrInvalidOption is returned when a letter is not offered by the current
// question.
var ErrInvalidOption = errors.New("letter is not an option of the current question")

// ErrNotAnswered is returned by Next when the current question has no answer.
var ErrNotAnswered = errors.New("current question has not been answered")

// Attempt is one run through the questionnaire. It owns the shuffled
// sequence, the cursor and the answer set; nothing is shared between
// attempts. An Attempt is not safe for concurrent use.
type Attempt struct {
	ID        string
	StartTime time.Time

	bank      *questionbank.Bank
	shuffler  *questionbank.Shuffler
	logger    *zap.Logger
	questions []questionbank.Question
	position  int
	answers   scoring.AnswerSet
}

// Outcome is the finished result of an attempt.
type Outcome struct {
	AttemptID string
	Result    scoring.Result
	Type      typedex.Type
	Answers   scoring.AnswerSet
	Duration  time.Duration
}

// Option configures an Attempt.
type Option func(*Attempt)

// WithShuffler sets the shuffler used for the initial order and restarts.
func WithShuffler(s *questionbank.Shuffler) Option {
	return func(a *Attempt) { a.shuffler = s }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *Attempt) { a.logger = l }
}

// NewAttempt starts an attempt over a freshly shuffled copy of bank.
func NewAttempt(bank *questionbank.Bank, opts ...Option) (*Attempt, error) {
	if bank == nil || bank.Len() == 0 {
		return nil, fmt.Errorf("%w: %w", questionbank.ErrBankUnavailable, questionbank.ErrEmptyBank)
	}
	a := &Attempt{bank: bank}
	for _, o := range opts {
		o(a)
	}
	if a.shuffler == nil {
		a.shuffler = questionbank.NewShuffler()
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	a.reset()
	return a, nil
}

func (a *Attempt) reset() {
	a.ID = uuid.New().String()
	a.StartTime = time.Now()
	a.questions = a.shuffler.Shuffle(a.bank)
	a.position = 0
	a.answers = scoring.AnswerSet{}
	a.logger.Debug("attempt started",
		zap.String("attempt_id", a.ID),
		zap.Int("questions", len(a.questions)))
}

// Restart abandons the current progress and begins again with a new order.
func (a *Attempt) Restart() {
	a.logger.Debug("attempt restarted",
		zap.String("attempt_id", a.ID),
		zap.Int("answered", len(a.answers)))
	a.reset()
}

// Len returns the number of questions in the attempt.
func (a *Attempt) Len() int {
	return len(a.questions)
}

// Position returns the zero-based index of the current question.
func (a *Attempt) Position() int {
	return a.position
}

// Current returns the question under the cursor.
func (a *Attempt) Current() questionbank.Question {
	return a.questions[a.position]
}

// Questions returns the attempt's question order.
func (a *Attempt) Questions() []questionbank.Question {
	out := make([]questionbank.Question, len(a.questions))
	copy(out, a.questions)
	return out
}

// IsLast reports whether the cursor is on the final question.
func (a *Attempt) IsLast() bool {
	return a.position == len(a.questions)-1
}

// Progress returns the 1-based position as a fraction of the total.
func (a *Attempt) Progress() float64 {
	return float64(a.position+1) / float64(len(a.questions))
}

// Answered returns the number of questions with an answer.
func (a *Attempt) Answered() int {
	return len(a.answers)
}

// Answers returns a copy of the answer set.
func (a *Attempt) Answers() scoring.AnswerSet {
	out := make(scoring.AnswerSet, len(a.answers))
	for k, v := range a.answers {
		out[k] = v
	}
	return out
}

// Selected returns the recorded answer for the current question.
func (a *Attempt) Selected() (dimension.Letter, bool) {
	l, ok := a.answers[a.Current().ID]
	return l, ok
}

// Answer records l for the current question, replacing any earlier choice,
// and moves to the next question unless this is the last one. It reports
// whether the cursor advanced.
func (a *Attempt) Answer(l dimension.Letter) (bool, error) {
	q := a.Current()
	if !q.Offers(l) {
		return false, fmt.Errorf("%w: %q for question %d", ErrInvalidOption, l, q.ID)
	}
	a.answers = scoring.RecordAnswer(a.answers, q.ID, l)
	if a.IsLast() {
		return false, nil
	}
	a.position++
	return true, nil
}

// AnswerOption records the option at index i (0 or 1) of the current question.
func (a *Attempt) AnswerOption(i int) (bool, error) {
	q := a.Current()
	if i < 0 || i >= len(q.Options) {
		return false, fmt.Errorf("%w: option %d", ErrInvalidOption, i)
	}
	return a.Answer(q.Options[i].Letter)
}

// Next moves forward without changing the answer. The current question must
// already be answered.
func (a *Attempt) Next() error {
	if _, ok := a.Selected(); !ok {
		return ErrNotAnswered
	}
	if !a.IsLast() {
		a.position++
	}
	return nil
}

// Back moves to the previous question. It is a no-op on the first one.
func (a *Attempt) Back() bool {
	if a.position == 0 {
		return false
	}
	a.position--
	return true
}

// Complete reports whether every question has exactly one answer.
func (a *Attempt) Complete() bool {
	return len(a.answers) == len(a.questions)
}

// Finish scores the attempt and looks up the matching type. It fails with
// scoring.ErrIncompleteAnswers until every question is answered.
func (a *Attempt) Finish() (Outcome, error) {
	res, err := scoring.Score(a.answers, a.questions)
	if err != nil {
		return Outcome{}, fmt.Errorf("finish attempt: %w", err)
	}
	t, err := typedex.Lookup(res.Code)
	if err != nil {
		return Outcome{}, fmt.Errorf("finish attempt: %w", err)
	}

	out := Outcome{
		AttemptID: a.ID,
		Result:    res,
		Type:      t,
		Answers:   a.Answers(),
		Duration:  time.Since(a.StartTime),
	}
	a.logger.Info("attempt finished",
		zap.String("attempt_id", a.ID),
		zap.String("code", res.Code),
		zap.Duration("duration", out.Duration))
	return out, nil
}
