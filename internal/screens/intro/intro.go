package intro

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/assessment"
	"github.com/abhisek/vrfit/internal/catalog"
	"github.com/abhisek/vrfit/internal/router"
	"github.com/abhisek/vrfit/internal/screen"
	"github.com/abhisek/vrfit/internal/screens/questions"
	"github.com/abhisek/vrfit/internal/ui/components"
	"github.com/abhisek/vrfit/internal/ui/layout"
	"github.com/abhisek/vrfit/internal/ui/theme"
)

// maxContentWidth caps line length on wide terminals.
const maxContentWidth = 96

type keyMap struct {
	Quit   key.Binding
	Scroll key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑↓", "Scroll"),
		),
	}
}

// IntroScreen presents the track overview and starts the questionnaire.
type IntroScreen struct {
	flow   *assessment.Flow
	logger *zap.Logger
	keys   keyMap
	start  components.Button
	vp     viewport.Model

	renderedWidth int
}

var _ screen.Screen = (*IntroScreen)(nil)

// New creates the intro screen for flow.
func New(flow *assessment.Flow, logger *zap.Logger) *IntroScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &IntroScreen{
		flow:   flow,
		logger: logger,
		keys:   defaultKeyMap(),
		vp:     viewport.New(),
	}
	s.start = components.NewButton("Start Assessment", true, s.begin)
	return s
}

func (s *IntroScreen) Title() string {
	return "Career Assessment"
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(kmsg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(kmsg, s.keys.Scroll):
			var cmd tea.Cmd
			s.vp, cmd = s.vp.Update(msg)
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.start, cmd = s.start.Update(msg)
	return s, cmd
}

// begin moves the flow to its first question and pushes the questions screen.
func (s *IntroScreen) begin() tea.Cmd {
	if err := s.flow.Start(); err != nil {
		s.logger.Warn("cannot start assessment", zap.Error(err))
		return nil
	}
	next := questions.New(s.flow, s.logger)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	contentWidth := min(width-4, maxContentWidth)
	if contentWidth != s.renderedWidth {
		s.vp.SetContent(renderContent(contentWidth))
		s.renderedWidth = contentWidth
	}

	button := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.start.View())
	buttonHeight := lipgloss.Height(button) + 1

	s.vp.SetWidth(contentWidth)
	s.vp.SetHeight(max(height-buttonHeight, 1))

	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
	return body + "\n\n" + button
}

func renderContent(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var sections []string

	sections = append(sections, center.Render(RenderBanner(width)))
	sections = append(sections, "")
	sections = append(sections, center.Render(theme.Heading.Render(catalog.Track+" Assessment")))
	sections = append(sections, center.Foreground(theme.TextDim).Render(catalog.Tagline))
	sections = append(sections, "")

	tags := make([]string, 0, len(catalog.Technologies))
	for _, tech := range catalog.Technologies {
		tags = append(tags, theme.Tag.Render(tech))
	}
	sections = append(sections, center.Render(strings.Join(tags, " ")))
	sections = append(sections, "")

	sections = append(sections, theme.Heading.Render("What is VR Simulation Engineering?"))
	sections = append(sections, theme.Body.Width(width).Render(catalog.Overview))
	sections = append(sections, "")

	colWidth := (width - 2) / 2
	skills := highlightList("Key Skills", catalog.KeySkills, colWidth)
	careers := bulletList("Career Paths", catalog.Careers, colWidth)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, skills, "  ", careers))
	sections = append(sections, "")

	sections = append(sections, highlightList("What You'll Discover", catalog.Discoveries, width))

	return strings.Join(sections, "\n")
}

func highlightList(title string, items []catalog.Highlight, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	lines := []string{theme.Heading.Render(title)}
	for _, h := range items {
		line := label.Render("• "+h.Label) + theme.Hint.Render("  "+h.Description)
		lines = append(lines, lipgloss.NewStyle().Width(width).Render(line))
	}
	return strings.Join(lines, "\n")
}

func bulletList(title string, items []string, width int) string {
	lines := []string{theme.Heading.Render(title)}
	for _, item := range items {
		lines = append(lines, theme.Body.Width(width).Render("• "+item))
	}
	return strings.Join(lines, "\n")
}
