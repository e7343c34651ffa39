// Package app hosts the Bubble Tea program: a router of screens framed by
// a header and a footer.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/insight"
	"github.com/abhisek/persona/internal/questionbank"
	"github.com/abhisek/persona/internal/router"
	"github.com/abhisek/persona/internal/screen"
	"github.com/abhisek/persona/internal/screens/browse"
	"github.com/abhisek/persona/internal/screens/home"
	"github.com/abhisek/persona/internal/screens/lookup"
	"github.com/abhisek/persona/internal/screens/result"
	"github.com/abhisek/persona/internal/screens/test"
	"github.com/abhisek/persona/internal/screens/welcome"
	"github.com/abhisek/persona/internal/session"
	"github.com/abhisek/persona/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// LoadBank supplies the question bank for each attempt.
	LoadBank func() (*questionbank.Bank, error)

	// Shuffler orders questions; nil means a fresh random shuffler.
	Shuffler *questionbank.Shuffler

	// Insight is optional.
	Insight *insight.Service
	Logger  *zap.Logger

	// StartTest skips the intro and menu and opens the questionnaire.
	StartTest bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.LoadBank == nil {
		opts.LoadBank = questionbank.Default
	}

	m := AppModel{opts: opts}
	var first screen.Screen
	if opts.StartTest {
		first = m.newHome()
	} else {
		first = welcome.New(m.newHome)
	}
	m.router = router.New(first)
	return m
}

func (m AppModel) newHome() screen.Screen {
	return home.New(home.Destinations{
		TakeTest: m.newTest,
		Browse:   func() screen.Screen { return browse.New() },
		Lookup:   func() screen.Screen { return lookup.New() },
	})
}

func (m AppModel) newTest() screen.Screen {
	return test.New(test.Config{
		LoadBank: m.opts.LoadBank,
		Shuffler: m.opts.Shuffler,
		Logger:   m.opts.Logger,
		OnFinish: func(o session.Outcome) screen.Screen {
			return result.New(o, m.opts.Insight, m.newTest)
		},
	})
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.opts.StartTest {
		return tea.Batch(cmd, func() tea.Msg { return router.PushScreenMsg{Screen: m.newTest()} })
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		m.opts.Logger.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
