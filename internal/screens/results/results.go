package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/assessment"
	"github.com/abhisek/vrfit/internal/catalog"
	"github.com/abhisek/vrfit/internal/router"
	"github.com/abhisek/vrfit/internal/scoring"
	"github.com/abhisek/vrfit/internal/screen"
	"github.com/abhisek/vrfit/internal/ui/components"
	"github.com/abhisek/vrfit/internal/ui/layout"
	"github.com/abhisek/vrfit/internal/ui/theme"
)

const (
	maxContentWidth  = 96
	factorLabelWidth = 22
)

type keyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retake"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ResultsScreen shows the scored outcome in a scrollable view.
type ResultsScreen struct {
	flow   *assessment.Flow
	logger *zap.Logger
	keys   keyMap
	vp     viewport.Model

	result        scoring.Result
	hasResult     bool
	renderedWidth int
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates a results screen for a flow that has reached its results step.
func New(flow *assessment.Flow, logger *zap.Logger) *ResultsScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	res, ok := flow.Result()
	return &ResultsScreen{
		flow:      flow,
		logger:    logger,
		keys:      defaultKeyMap(),
		vp:        viewport.New(),
		result:    res,
		hasResult: ok,
	}
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "r", Description: "Retake"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, s.keys.Quit):
		return s, tea.Quit
	case key.Matches(kmsg, s.keys.Restart):
		if err := s.flow.Restart(); err != nil {
			s.logger.Warn("restart failed", zap.Error(err))
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	contentWidth := min(width-4, maxContentWidth)
	if contentWidth != s.renderedWidth {
		s.vp.SetContent(s.renderContent(contentWidth))
		s.renderedWidth = contentWidth
	}
	s.vp.SetWidth(contentWidth)
	s.vp.SetHeight(max(height, 1))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.vp.View())
}

func (s *ResultsScreen) renderContent(width int) string {
	if !s.hasResult {
		return theme.Hint.Render("No results yet.")
	}
	r := s.result
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(theme.Tag.Render("Assessment Complete")))
	sections = append(sections, center.Render(theme.Heading.Render("Your VR Engineering Assessment Results")))
	sections = append(sections, "")
	sections = append(sections, s.renderRecommendation(width))
	sections = append(sections, "")

	colWidth := (width - 2) / 2
	psy := scoreCard("Psychological Fit", r.Psychometric, colWidth)
	tech := scoreCard("Technical Readiness", r.Technical, colWidth)
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, psy, "  ", tech))
	sections = append(sections, "")

	sections = append(sections, theme.Heading.Render("WISCAR Framework Analysis"))
	for _, f := range catalog.AllFactors() {
		bar := components.NewScoreBar(f.DisplayName(), r.Wiscar[f], width)
		bar.LabelWidth = factorLabelWidth
		sections = append(sections, bar.View())
	}
	sections = append(sections, "")

	sections = append(sections, theme.Heading.Render("Recommended Next Steps"))
	for _, step := range r.NextSteps {
		sections = append(sections, theme.Body.Width(width).Render("→ "+step))
	}
	sections = append(sections, "")

	sections = append(sections, theme.Heading.Render("Related Career Opportunities"))
	sections = append(sections, theme.Body.Width(width).Render(strings.Join(catalog.Careers, " · ")))
	sections = append(sections, "")

	sections = append(sections, theme.Heading.Render("Learning Resources"))
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	for _, res := range catalog.Resources {
		sections = append(sections, label.Render(res.Label)+theme.Hint.Render("  "+res.Description))
	}

	return strings.Join(sections, "\n")
}

func (s *ResultsScreen) renderRecommendation(width int) string {
	r := s.result
	title := lipgloss.NewStyle().
		Foreground(theme.ScoreColor(r.Overall)).
		Bold(true).
		Render(r.Recommendation)
	summary := theme.Hint.Render(fmt.Sprintf(
		"Overall Readiness Score: %d/100 | Confidence Level: %d%%", r.Overall, r.Confidence))

	return theme.Card.
		Width(width).
		Align(lipgloss.Center).
		Render(title + "\n" + summary)
}

func scoreCard(title string, sr scoring.ScoreResult, width int) string {
	inner := max(width-6, 10)
	lines := []string{
		theme.Heading.Render(title) + theme.Hint.Render(fmt.Sprintf("  %d/100", sr.Score)),
		components.NewScoreBar("", sr.Score, inner).View(),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sr.Interpretation),
		theme.Hint.Width(inner).Render(sr.Details),
	}
	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}
