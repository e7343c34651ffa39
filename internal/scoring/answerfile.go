package scoring

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/persona/internal/dimension"
)

// answerFile is the on-disk form read by ReadAnswers:
//
//	answers:
//	  1: E
//	  2: n
type answerFile struct {
	Answers map[int]string `yaml:"answers"`
}

// ReadAnswers decodes an answer file. Letters are case-insensitive. Whether
// each letter fits its question is checked later by Score.
func ReadAnswers(r io.Reader) (AnswerSet, error) {
	var doc answerFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return AnswerSet{}, nil
		}
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	set := make(AnswerSet, len(doc.Answers))
	for id, raw := range doc.Answers {
		l, err := dimension.ParseLetter(raw)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", id, err)
		}
		set[id] = l
	}
	return set, nil
}

// ReadAnswersFile opens path and decodes it with ReadAnswers.
func ReadAnswersFile(path string) (AnswerSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()
	return ReadAnswers(f)
}
