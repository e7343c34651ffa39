// Package typedex holds the 16 personality type records and looks them up
// by result code.
package typedex

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/persona/internal/dimension"
)

//go:embed data/types.yaml
var typesYAML []byte

// ErrTypeNotFound is returned when a code matches none of the 16 types.
var ErrTypeNotFound = errors.New("type not found")

// Group is one of the four temperament groups.
type Group string

const (
	GroupAnalyst  Group = "Analyst"
	GroupDiplomat Group = "Diplomat"
	GroupSentinel Group = "Sentinel"
	GroupExplorer Group = "Explorer"
)

// Functions is the cognitive function stack of a type.
type Functions struct {
	Dominant  string `yaml:"dominant"`
	Auxiliary string `yaml:"auxiliary"`
	Tertiary  string `yaml:"tertiary"`
	Inferior  string `yaml:"inferior"`
}

// Type is the descriptive record for one result code.
type Type struct {
	Code            string    `yaml:"code"`
	Nickname        string    `yaml:"nickname"`
	Group           Group     `yaml:"group"`
	Tagline         string    `yaml:"tagline"`
	Description     string    `yaml:"description"`
	FullDescription string    `yaml:"full_description"`
	Strengths       []string  `yaml:"strengths"`
	Weaknesses      []string  `yaml:"weaknesses"`
	Careers         []string  `yaml:"careers"`
	Famous          []string  `yaml:"famous"`
	Functions       Functions `yaml:"functions"`
}

// Codes returns the 16 valid result codes in canonical order.
func Codes() []string {
	return []string{
		"INTJ", "INTP", "ENTJ", "ENTP",
		"INFJ", "INFP", "ENFJ", "ENFP",
		"ISTJ", "ISFJ", "ESTJ", "ESFJ",
		"ISTP", "ISFP", "ESTP", "ESFP",
	}
}

var table = sync.OnceValue(func() []Type {
	var doc struct {
		Types []Type `yaml:"types"`
	}
	if err := yaml.Unmarshal(typesYAML, &doc); err != nil {
		panic(fmt.Sprintf("typedex: parse embedded types: %v", err))
	}
	return doc.Types
})

// All returns every type record in canonical order.
func All() []Type {
	t := table()
	out := make([]Type, len(t))
	for i, rec := range t {
		out[i] = rec.clone()
	}
	return out
}

// clone returns a deep copy so callers cannot reach the shared table.
func (t Type) clone() Type {
	t.Strengths = slices.Clone(t.Strengths)
	t.Weaknesses = slices.Clone(t.Weaknesses)
	t.Careers = slices.Clone(t.Careers)
	t.Famous = slices.Clone(t.Famous)
	return t
}

// ParseCode normalises a code and checks it is one of the 16 combinations.
func ParseCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 4 {
		return "", fmt.Errorf("%w: %q", ErrTypeNotFound, code)
	}
	for i, d := range dimension.AllDichotomies() {
		if !d.Contains(dimension.Letter(c[i : i+1])) {
			return "", fmt.Errorf("%w: %q", ErrTypeNotFound, code)
		}
	}
	return c, nil
}

// Lookup returns the record for code, case-insensitively. Anything outside
// the 16 canonical codes yields ErrTypeNotFound.
func Lookup(code string) (Type, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Type{}, err
	}
	for _, t := range table() {
		if t.Code == c {
			return t.clone(), nil
		}
	}
	return Type{}, fmt.Errorf("%w: %q", ErrTypeNotFound, code)
}
