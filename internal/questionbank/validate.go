package questionbank

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/mod/semver"
)

// SupportedMajor is the bank format major version this build understands.
const SupportedMajor = "v1"

// ValidationError reports every problem found in a bank document.
// It matches ErrBankUnavailable with errors.Is.
type ValidationError struct {
	Problems *multierror.Error
}

func (e *ValidationError) Error() string {
	return "invalid question bank: " + e.Problems.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrBankUnavailable, e.Problems}
}

// Len returns the number of problems found.
func (e *ValidationError) Len() int {
	return e.Problems.Len()
}

// validateQuestions checks the semantic invariants the schema cannot
// express: supported version, unique IDs, and that both options of a
// question split one dichotomy.
func validateQuestions(version string, questions []Question) error {
	var problems *multierror.Error

	switch {
	case !semver.IsValid(version):
		problems = multierror.Append(problems, fmt.Errorf("version %q is not a valid semantic version", version))
	case semver.Major(version) != SupportedMajor:
		problems = multierror.Append(problems, fmt.Errorf("version %s is not supported (want %s.x.y)", version, SupportedMajor))
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		if seen[q.ID] {
			problems = multierror.Append(problems, fmt.Errorf("question %d: duplicate id", q.ID))
		}
		seen[q.ID] = true

		if q.Text == "" {
			problems = multierror.Append(problems, fmt.Errorf("question %d (index %d): empty text", q.ID, i))
		}
		if err := checkOptions(q); err != nil {
			problems = multierror.Append(problems, err)
		}
	}

	if problems != nil {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func checkOptions(q Question) error {
	a, b := q.Options[0].Letter, q.Options[1].Letter
	if !a.Valid() || !b.Valid() {
		return fmt.Errorf("question %d: options %q/%q must be dimension letters", q.ID, a, b)
	}
	d := q.Dichotomy()
	if b != d.Opposite(a) {
		return fmt.Errorf("question %d: options %s/%s do not cover a single dichotomy", q.ID, a, b)
	}
	for i, o := range q.Options {
		if o.Text == "" {
			return fmt.Errorf("question %d: option %d has empty text", q.ID, i)
		}
	}
	return nil
}
