package questions

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/assessment"
	"github.com/abhisek/vrfit/internal/router"
	"github.com/abhisek/vrfit/internal/screen"
	"github.com/abhisek/vrfit/internal/screens/results"
	"github.com/abhisek/vrfit/internal/ui/components"
	"github.com/abhisek/vrfit/internal/ui/layout"
	"github.com/abhisek/vrfit/internal/ui/theme"
)

const maxCardWidth = 90

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Back key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", "right", "l"),
			key.WithHelp("Enter/→", "Next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "Previous"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Back to intro"),
		),
	}
}

// QuestionsScreen walks through the catalog one question at a time.
type QuestionsScreen struct {
	flow    *assessment.Flow
	logger  *zap.Logger
	keys    keyMap
	options components.OptionList

	// nudge is set when Next is pressed before an answer is chosen.
	nudge bool
}

var _ screen.Screen = (*QuestionsScreen)(nil)

// New creates a questions screen over a flow that has already been started.
func New(flow *assessment.Flow, logger *zap.Logger) *QuestionsScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuestionsScreen{
		flow:   flow,
		logger: logger,
		keys:   defaultKeyMap(),
	}
	s.syncOptions()
	return s
}

func (s *QuestionsScreen) Title() string {
	return "Assessment"
}

func (s *QuestionsScreen) Status() string {
	return s.flow.Position()
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓/1-5", Description: "Choose"},
		{Key: "Enter/→", Description: "Next"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Intro"},
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Back):
		if err := s.flow.BackToIntro(); err != nil {
			s.logger.Warn("back to intro failed", zap.Error(err))
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case key.Matches(kmsg, s.keys.Next):
		return s, s.next()

	case key.Matches(kmsg, s.keys.Prev):
		if err := s.flow.Previous(); err != nil {
			s.logger.Warn("previous failed", zap.Error(err))
		}
		s.syncOptions()
		return s, nil
	}

	s.options, _ = s.options.Update(msg)
	if s.options.Selected >= 0 && s.options.Selected != s.flow.Selected() {
		if err := s.flow.Select(s.options.Selected); err != nil {
			s.logger.Warn("select failed", zap.Error(err))
			return s, nil
		}
		s.nudge = false
	}
	return s, nil
}

// next advances the flow, swapping in the results screen after the last
// question.
func (s *QuestionsScreen) next() tea.Cmd {
	if !s.flow.IsAnswered() {
		s.nudge = true
		return nil
	}
	if err := s.flow.Next(); err != nil {
		s.logger.Warn("next failed", zap.Error(err))
		return nil
	}

	if s.flow.Step() == assessment.StepResults {
		res := results.New(s.flow, s.logger)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: res}
		}
	}

	s.syncOptions()
	return nil
}

func (s *QuestionsScreen) syncOptions() {
	s.nudge = false
	s.options = components.NewOptionList(s.flow.Current().Options, s.flow.Selected())
}

func (s *QuestionsScreen) View(width, height int) string {
	q := s.flow.Current()
	cardWidth := min(width-4, maxCardWidth)
	var sections []string

	meta := lipgloss.NewStyle().Foreground(theme.TextDim)
	left := meta.Render(s.flow.Position())
	right := theme.Tag.Render(q.Subcategory)
	gap := max(cardWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	sections = append(sections, left+strings.Repeat(" ", gap)+right)

	bar := components.NewProgressBar("", s.flow.Progress(), false, cardWidth)
	sections = append(sections, bar.View())
	sections = append(sections, "")

	sections = append(sections, meta.Render(q.Category.DisplayName()))
	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cardWidth).
		Render(q.Prompt)
	sections = append(sections, prompt)
	sections = append(sections, theme.Hint.Render("Select the option that best describes you or your knowledge"))
	sections = append(sections, "")
	sections = append(sections, s.options.View())

	sections = append(sections, s.renderNav(cardWidth))
	if s.nudge {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Warning).Render("Choose an answer to continue"))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuestionsScreen) renderNav(width int) string {
	prev := components.Button{Label: "Previous", Active: s.flow.Index() > 0}
	nextLabel := "Next"
	if s.flow.IsLast() {
		nextLabel = "Complete Assessment"
	}
	next := components.Button{Label: nextLabel, Active: s.flow.IsAnswered()}

	left := prev.View()
	right := next.View()
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}
