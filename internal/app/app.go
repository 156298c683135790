package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/assessment"
	"github.com/abhisek/vrfit/internal/router"
	"github.com/abhisek/vrfit/internal/screen"
	"github.com/abhisek/vrfit/internal/screens/intro"
	"github.com/abhisek/vrfit/internal/screens/splash"
	"github.com/abhisek/vrfit/internal/ui/layout"
)

// Options configures the interactive assessment.
type Options struct {
	// Logger receives diagnostics. It must not write to stdout while the
	// program owns the terminal. Nil discards everything.
	Logger *zap.Logger

	// SkipSplash opens directly on the intro screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	flow   *assessment.Flow
	width  int
	height int
}

// newAppModel creates an AppModel starting on the splash, or the intro
// screen when the splash is skipped.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	flow := assessment.New(logger)
	newIntro := func() screen.Screen { return intro.New(flow, logger) }

	first := newIntro()
	if !opts.SkipSplash {
		first = splash.New(newIntro)
	}
	return AppModel{
		router: router.New(first),
		flow:   flow,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
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

// render draws the active screen inside the frame for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var frame layout.Frame
	if active := m.router.Active(); active != nil {
		frame.Title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			frame.Status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			frame.Hints = hp.KeyHints()
		}
	}
	return frame.Render(m.width, m.height, m.router.View)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
