package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/persona/internal/insight"
	"github.com/abhisek/persona/internal/scoring"
	"github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/typedex"
)

type scoreReport struct {
	Code      string           `yaml:"code"`
	Nickname  string           `yaml:"nickname"`
	Group     string           `yaml:"group"`
	Breakdown []scoreDimension `yaml:"breakdown"`
}

type scoreDimension struct {
	Pair     string `yaml:"pair"`
	First    int    `yaml:"first"`
	Second   int    `yaml:"second"`
	Dominant string `yaml:"dominant"`
	Clarity  string `yaml:"clarity"`
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <answers.yaml>",
		Short: "Score an answers file against the question bank",
		Long: `Score a YAML file of the form

  answers:
    1: E
    2: N

Every question in the bank must be answered exactly once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := bankLoader(cmd)()
			if err != nil {
				return err
			}
			answers, err := scoring.ReadAnswersFile(args[0])
			if err != nil {
				return err
			}
			for id := range answers {
				if _, ok := bank.Get(id); !ok {
					return fmt.Errorf("%s: question %d is not in bank %s", args[0], id, bank.Version())
				}
			}
			result, err := scoring.Score(answers, bank.Questions())
			if err != nil {
				return fmt.Errorf("score %s: %w", args[0], err)
			}
			t, err := typedex.Lookup(result.Code)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("output")
			switch format {
			case "yaml":
				if err := writeScoreYAML(cmd, result, t); err != nil {
					return err
				}
			case "text", "":
				writeScoreText(cmd, result, t)
			default:
				return fmt.Errorf("unknown output format %q (want text or yaml)", format)
			}

			if reflect, _ := cmd.Flags().GetBool("reflect"); reflect {
				return writeReflection(cmd, session.Outcome{
					AttemptID: uuid.NewString(),
					Result:    result,
					Type:      t,
					Answers:   answers,
				})
			}
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "text", "Output format: text or yaml")
	cmd.Flags().Bool("reflect", false, "Ask the configured LLM provider for a short reflection")
	return cmd
}

func writeScoreText(cmd *cobra.Command, result scoring.Result, t typedex.Type) {
	w := out(cmd)
	fmt.Fprintf(w, "%s  %s (%s)\n", result.Code, t.Nickname, t.Group)
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "%-6s  %6s  %6s  %-8s  %-12s  %s\n", "Pair", "First", "Second", "Dominant", "Clarity", "Dimension")
	for _, d := range result.Breakdown() {
		fmt.Fprintf(w, "%-6s  %6d  %6d  %-8s  %-12s  %s\n",
			d.Dichotomy, d.FirstCount, d.SecondCount, d.Dominant, d.Clarity, d.Dichotomy.Label())
	}
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, t.Description)
}

func writeScoreYAML(cmd *cobra.Command, result scoring.Result, t typedex.Type) error {
	report := scoreReport{Code: result.Code, Nickname: t.Nickname, Group: string(t.Group)}
	for _, d := range result.Breakdown() {
		report.Breakdown = append(report.Breakdown, scoreDimension{
			Pair:     d.Dichotomy.String(),
			First:    d.FirstCount,
			Second:   d.SecondCount,
			Dominant: string(d.Dominant),
			Clarity:  string(d.Clarity),
		})
	}
	enc := yaml.NewEncoder(out(cmd))
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func writeReflection(cmd *cobra.Command, o session.Outcome) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	svc, err := newInsightService(cmd, logger)
	if err != nil {
		return err
	}
	if !svc.Enabled() {
		return insight.ErrDisabled
	}

	start := time.Now()
	r, err := svc.Reflect(cmd.Context(), o)
	if err != nil {
		return err
	}

	w := out(cmd)
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Headline)
	fmt.Fprintln(w, r.Body)
	for _, tip := range r.GrowthTips {
		fmt.Fprintf(w, "  • %s\n", tip)
	}
	fmt.Fprintf(w, "(%s, %s)\n", r.Model, time.Since(start).Round(time.Millisecond))
	return nil
}
