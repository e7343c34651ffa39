// Package result shows a finished attempt: the code, the per-pair
// breakdown and the matching type, plus an optional reflection.
package result

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/persona/internal/insight"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/typeinfo"
	"github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/typedex"
	"github.com/abhisek/persona/internal/ui/components"
	"github.com/abhisek/persona/internal/ui/layout"
	"github.com/abhisek/persona/internal/ui/theme"
)

type reflectionMsg struct {
	attemptID  string
	reflection *insight.Reflection
	err        error
}

// ResultScreen renders an Outcome.
type ResultScreen struct {
	outcome session.Outcome
	insight *insight.Service
	retake  func() screen.Screen

	reflection *insight.Reflection
	reflectErr error
	reflecting bool
	cancel     context.CancelFunc

	vp viewport.Model
}

var (
	_ screen.Screen = (*ResultScreen)(nil)
	_ screen.Closer = (*ResultScreen)(nil)
)

// New creates the result screen. svc may be nil. retake builds a fresh
// questionnaire; nil disables the retake key.
func New(o session.Outcome, svc *insight.Service, retake func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		outcome: o,
		insight: svc,
		retake:  retake,
		vp:      viewport.New(),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	if !r.insight.Enabled() {
		return nil
	}
	r.reflecting = true
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	svc, o := r.insight, r.outcome
	return func() tea.Msg {
		ref, err := svc.Reflect(ctx, o)
		return reflectionMsg{attemptID: o.AttemptID, reflection: ref, err: err}
	}
}

// Close cancels a reflection still in flight.
func (r *ResultScreen) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *ResultScreen) Title() string {
	return "Your result"
}

func (r *ResultScreen) Status() string {
	return r.outcome.Result.Code
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reflectionMsg:
		if msg.attemptID == r.outcome.AttemptID {
			r.reflecting = false
			r.reflection, r.reflectErr = msg.reflection, msg.err
			r.Close()
		}
		return r, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "d":
			detail := typeinfo.New(r.outcome.Type)
			return r, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
		case "r":
			if r.retake == nil {
				return r, nil
			}
			next := r.retake()
			return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "enter", "h":
			return r, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}

	var cmd tea.Cmd
	r.vp, cmd = r.vp.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r.vp.SetWidth(width)
	r.vp.SetHeight(height)
	r.vp.SetContent(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.content(cw)))
	return r.vp.View()
}

func (r *ResultScreen) content(cw int) string {
	o := r.outcome
	t := o.Type
	groupColor := theme.GroupColor(string(t.Group))

	code := lipgloss.NewStyle().
		Bold(true).
		Foreground(groupColor).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(groupColor).
		Padding(0, 3).
		Render(strings.Join(strings.Split(o.Result.Code, ""), " "))

	head := lipgloss.JoinVertical(lipgloss.Center,
		code,
		theme.Body.Bold(true).Render(t.Nickname),
		lipgloss.NewStyle().Foreground(groupColor).Render(string(t.Group)),
		theme.Hint.Render(t.Tagline),
	)

	var bars []string
	for _, s := range o.Result.Breakdown() {
		d := s.Dichotomy
		bar := components.SplitBar{
			Left:       string(d.First),
			Right:      string(d.Second),
			LeftShare:  s.FirstPercent,
			RightShare: s.SecondPercent,
			Width:      cw - 18,
		}
		label := lipgloss.NewStyle().Width(14).Foreground(theme.TextDim).Render(string(s.Clarity))
		bars = append(bars, theme.Hint.Render(d.Label()), bar.View()+"  "+label)
	}

	description := lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Render(t.Description)

	sections := []string{
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, head),
		"",
		strings.Join(bars, "\n"),
		"",
		description,
		"",
		r.listLine("Strengths", t.Strengths, cw),
		r.listLine("Watch out for", t.Weaknesses, cw),
	}
	if ins := r.insightView(cw); ins != "" {
		sections = append(sections, "", ins)
	}
	if r.reflection == nil {
		sections = append(sections, "", components.Card(strings.Join([]string{
			theme.Selected.Render("Growth focus"),
			theme.Body.Width(cw - 6).Render(GrowthFocus(t)),
		}, "\n"), cw))
	}
	sections = append(sections, "", theme.Hint.Render(fmt.Sprintf("Completed in %s.", o.Duration.Round(time.Second))))

	return lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n"))
}

// GrowthFocus suggests one area to work on, drawn from the type's first
// listed weakness.
func GrowthFocus(t typedex.Type) string {
	if len(t.Weaknesses) == 0 {
		return fmt.Sprintf("Embrace your strengths as an %s and keep looking for ways to use them day to day.", t.Code)
	}
	return fmt.Sprintf("A key area for growth as an %s is becoming more aware of %q. Notice when it shows up and try one small change at a time.",
		t.Code, strings.ToLower(t.Weaknesses[0]))
}

func (r *ResultScreen) listLine(label string, items []string, cw int) string {
	if len(items) == 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(cw).Render(
		theme.Selected.Render(label+": ") + theme.Body.Render(strings.Join(items, ", ")))
}

func (r *ResultScreen) insightView(cw int) string {
	switch {
	case r.reflecting:
		return theme.Hint.Render("Writing a personal reflection…")
	case r.reflectErr != nil:
		return theme.Hint.Render("Reflection unavailable: " + r.reflectErr.Error())
	case r.reflection == nil:
		return ""
	}

	ref := r.reflection
	lines := []string{
		theme.Selected.Render(ref.Headline),
		"",
		theme.Body.Width(cw - 6).Render(ref.Body),
	}
	for _, tip := range ref.GrowthTips {
		lines = append(lines, theme.Body.Width(cw-6).Render("• "+tip))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "d", Description: "Full profile"},
	}
	if r.retake != nil {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Retake"})
	}
	return append(hints,
		layout.KeyHint{Key: "↑↓", Description: "Scroll"},
		layout.KeyHint{Key: "Enter", Description: "Home"},
	)
}
