// Package test runs one attempt of the questionnaire.
package test

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/questionbank"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

// Config wires the screen to its collaborators.
type Config struct {
	// LoadBank is called on start and on every retry.
	LoadBank func() (*questionbank.Bank, error)
	Shuffler *questionbank.Shuffler
	Logger   *zap.Logger

	// OnFinish builds the screen that replaces this one once the attempt
	// is scored.
	OnFinish func(session.Outcome) screen.Screen
}

type bankLoadedMsg struct {
	bank *questionbank.Bank
	err  error
}

// TestScreen shows one question at a time and owns the Attempt.
type TestScreen struct {
	cfg     Config
	attempt *session.Attempt
	choice  components.Choice
	loadErr error
	notice  string
	loading bool
}

var _ screen.Screen = (*TestScreen)(nil)

// New creates the questionnaire screen. The bank is loaded by Init.
func New(cfg Config) *TestScreen {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &TestScreen{cfg: cfg, loading: true}
}

func (s *TestScreen) Init() tea.Cmd {
	return s.load()
}

func (s *TestScreen) load() tea.Cmd {
	s.loading = true
	load := s.cfg.LoadBank
	return func() tea.Msg {
		if load == nil {
			return bankLoadedMsg{err: questionbank.ErrBankUnavailable}
		}
		b, err := load()
		return bankLoadedMsg{bank: b, err: err}
	}
}

func (s *TestScreen) Title() string {
	return "Personality test"
}

// Status shows the answered count in the header.
func (s *TestScreen) Status() string {
	if s.attempt == nil {
		return ""
	}
	return fmt.Sprintf("%d / %d answered", s.attempt.Answered(), s.attempt.Len())
}

func (s *TestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		return s, s.handleLoaded(msg)
	case tea.KeyPressMsg:
		if s.attempt == nil {
			if msg.String() == "r" && !s.loading {
				s.loadErr = nil
				return s, s.load()
			}
			return s, nil
		}
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *TestScreen) handleLoaded(msg bankLoadedMsg) tea.Cmd {
	s.loading = false
	if msg.err != nil {
		s.loadErr = msg.err
		s.cfg.Logger.Warn("question bank unavailable", zap.Error(msg.err))
		return nil
	}

	opts := []session.Option{session.WithLogger(s.cfg.Logger)}
	if s.cfg.Shuffler != nil {
		opts = append(opts, session.WithShuffler(s.cfg.Shuffler))
	}
	a, err := session.NewAttempt(msg.bank, opts...)
	if err != nil {
		s.loadErr = err
		return nil
	}
	s.loadErr = nil
	s.attempt = a
	s.syncChoice()
	return nil
}

// syncChoice rebuilds the option list for the question under the cursor.
func (s *TestScreen) syncChoice() {
	q := s.attempt.Current()
	chosen := -1
	if l, ok := s.attempt.Selected(); ok {
		chosen = q.OptionIndex(l)
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Text
	}
	s.choice = components.NewChoice(q.Text, labels, chosen)
}

func (s *TestScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	s.notice = ""

	switch msg.String() {
	case "left", "b", "backspace":
		if s.attempt.Back() {
			s.syncChoice()
		}
		return nil
	case "right", "n", "tab":
		if err := s.attempt.Next(); err != nil {
			s.notice = "Pick an answer first."
			return nil
		}
		s.syncChoice()
		return nil
	case "f":
		return s.finish()
	case "ctrl+r":
		s.attempt.Restart()
		s.syncChoice()
		s.notice = "Started over with a new question order."
		return nil
	}

	s.choice, _ = s.choice.Update(msg)
	if !s.choice.Submitted {
		return nil
	}

	wasLast := s.attempt.IsLast()
	if _, err := s.attempt.AnswerOption(s.choice.Cursor); err != nil {
		s.notice = err.Error()
		s.syncChoice()
		return nil
	}
	if wasLast && s.attempt.Complete() {
		return s.finish()
	}
	s.syncChoice()
	return nil
}

func (s *TestScreen) finish() tea.Cmd {
	if !s.attempt.Complete() {
		missing := s.attempt.Len() - s.attempt.Answered()
		s.notice = fmt.Sprintf("%d question(s) still unanswered.", missing)
		return nil
	}
	out, err := s.attempt.Finish()
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	if s.cfg.OnFinish == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := s.cfg.OnFinish(out)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *TestScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	switch {
	case s.loadErr != nil:
		return components.Frame(s.errorView(cw), width, height)
	case s.attempt == nil:
		return components.Frame(theme.Hint.Render("Loading questions…"), width, height)
	}

	a := s.attempt
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", a.Position()+1, a.Len()),
		a.Progress(), true, cw,
	)

	body := components.Card(s.choice.View(cw-6), cw)

	var notice string
	switch {
	case s.notice != "":
		notice = theme.ErrorText.Render(s.notice)
	case a.Complete():
		notice = lipgloss.NewStyle().Foreground(theme.Success).Render("All answered. Press f to see your result.")
	default:
		notice = lipgloss.NewStyle().Width(cw).Italic(true).Foreground(theme.TextDim).Render(QuoteFor(a.Position()))
	}

	return components.Frame(strings.Join([]string{progress.View(), "", body, "", notice}, "\n"), width, height)
}

func (s *TestScreen) errorView(cw int) string {
	msg := "Could not load questions."
	if errors.Is(s.loadErr, questionbank.ErrEmptyBank) {
		msg = "The question bank is empty."
	}
	lines := []string{
		theme.ErrorText.Render(msg),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Render(s.loadErr.Error()),
		"",
		theme.Hint.Render("Press r to try again, Esc to go back."),
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *TestScreen) KeyHints() []layout.KeyHint {
	if s.attempt == nil {
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "f", Description: "Finish"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Esc", Description: "Quit test"},
	}
}
