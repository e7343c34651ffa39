package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/persona/internal/dimension"
)

//go:embed data/questions.yaml
var defaultYAML []byte

const schemaURL = "schema://question-bank.json"

// document is the on-disk YAML shape of a bank.
type document struct {
	Version   string        `yaml:"version"`
	Questions []docQuestion `yaml:"questions"`
}

type docQuestion struct {
	ID      int         `yaml:"id"`
	Text    string      `yaml:"text"`
	Options []docOption `yaml:"options"`
}

type docOption struct {
	Text  string `yaml:"text"`
	Value string `yaml:"value"`
}

var defaultBank = sync.OnceValues(func() (*Bank, error) {
	return Load(bytes.NewReader(defaultYAML))
})

// Default returns the built-in question bank. It is parsed once per process.
func Default() (*Bank, error) {
	return defaultBank()
}

// LoadFile reads a bank document from path.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBankUnavailable, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses and validates a YAML bank document.
func Load(r io.Reader) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrBankUnavailable, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrBankUnavailable, ErrEmptyBank)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrBankUnavailable, err)
	}
	// A schema failure still lets the semantic checks run, so one pass
	// reports every problem in the document.
	var schemaErr *ValidationError
	if err := validateDocument(raw); err != nil && !errors.As(err, &schemaErr) {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if schemaErr != nil {
			return nil, schemaErr
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrBankUnavailable, err)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for _, dq := range doc.Questions {
		q := Question{ID: dq.ID, Text: dq.Text}
		for i := 0; i < len(dq.Options) && i < 2; i++ {
			q.Options[i] = Option{
				Text:   dq.Options[i].Text,
				Letter: dimension.Letter(dq.Options[i].Value),
			}
		}
		questions = append(questions, q)
	}

	if schemaErr != nil {
		var semantic *ValidationError
		if errors.As(validateQuestions(doc.Version, questions), &semantic) {
			schemaErr.Problems = multierror.Append(schemaErr.Problems, semantic.Problems.Errors...)
		}
		return nil, schemaErr
	}
	return New(doc.Version, questions)
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	b, err := json.Marshal(documentSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateDocument checks the decoded YAML tree against documentSchema.
// The tree is round-tripped through JSON so numbers and maps take the
// shapes the validator expects.
func validateDocument(raw any) error {
	if raw == nil {
		return fmt.Errorf("%w: %w", ErrBankUnavailable, ErrEmptyBank)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("%w: compile schema: %w", ErrBankUnavailable, err)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBankUnavailable, err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("%w: %w", ErrBankUnavailable, err)
	}

	if err := sch.Validate(parsed); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &ValidationError{Problems: multierror.Append(nil, verr)}
		}
		return fmt.Errorf("%w: %w", ErrBankUnavailable, err)
	}
	return nil
}
