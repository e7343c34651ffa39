package dimension

import (
	"fmt"
	"strings"
)

// Letter is a single dimension letter.
type Letter string

const (
	E Letter = "E" // Extraversion
	I Letter = "I" // Introversion
	S Letter = "S" // Sensing
	N Letter = "N" // Intuition
	T Letter = "T" // Thinking
	F Letter = "F" // Feeling
	J Letter = "J" // Judging
	P Letter = "P" // Perceiving
)

// AllLetters returns the eight letters in dichotomy order.
func AllLetters() []Letter {
	return []Letter{E, I, S, N, T, F, J, P}
}

// Name returns the trait name for a letter.
func (l Letter) Name() string {
	switch l {
	case E:
		return "Extraversion"
	case I:
		return "Introversion"
	case S:
		return "Sensing"
	case N:
		return "Intuition"
	case T:
		return "Thinking"
	case F:
		return "Feeling"
	case J:
		return "Judging"
	case P:
		return "Perceiving"
	default:
		return string(l)
	}
}

// Valid reports whether l is one of the eight letters.
func (l Letter) Valid() bool {
	_, ok := DichotomyOf(l)
	return ok
}

// ParseLetter parses a single letter, case-insensitively.
func ParseLetter(s string) (Letter, error) {
	l := Letter(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("invalid dimension letter %q", s)
	}
	return l, nil
}

// Dichotomy is one of the four opposing pairs. First wins ties.
type Dichotomy struct {
	First  Letter
	Second Letter
}

var (
	EI = Dichotomy{First: E, Second: I}
	SN = Dichotomy{First: S, Second: N}
	TF = Dichotomy{First: T, Second: F}
	JP = Dichotomy{First: J, Second: P}
)

// AllDichotomies returns the four pairs in result-code order.
func AllDichotomies() []Dichotomy {
	return []Dichotomy{EI, SN, TF, JP}
}

// String returns the pair key, e.g. "EI".
func (d Dichotomy) String() string {
	return string(d.First) + string(d.Second)
}

// Label returns a human-readable label, e.g. "Extraversion vs Introversion".
func (d Dichotomy) Label() string {
	return d.First.Name() + " vs " + d.Second.Name()
}

// Contains reports whether l belongs to the pair.
func (d Dichotomy) Contains(l Letter) bool {
	return l == d.First || l == d.Second
}

// Opposite returns the other letter of the pair.
func (d Dichotomy) Opposite(l Letter) Letter {
	if l == d.First {
		return d.Second
	}
	return d.First
}

// DichotomyOf returns the pair a letter belongs to.
func DichotomyOf(l Letter) (Dichotomy, bool) {
	for _, d := range AllDichotomies() {
		if d.Contains(l) {
			return d, true
		}
	}
	return Dichotomy{}, false
}
