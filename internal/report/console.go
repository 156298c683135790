package report

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vrfit/internal/ui/components"
	"github.com/abhisek/vrfit/internal/ui/theme"
)

const (
	consoleWidth  = 72
	barLabelWidth = 22
)

// ConsoleFormatter writes a styled, human-readable report.
type ConsoleFormatter struct {
	width int
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{width: consoleWidth}
}

// Format writes r to w.
func (f *ConsoleFormatter) Format(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString(theme.Heading.Render(r.Track+" Assessment") + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Answered %d of %d questions", r.Answered, r.Total)) + "\n\n")

	rec := lipgloss.NewStyle().
		Foreground(theme.ScoreColor(r.Overall)).
		Bold(true).
		Render(r.Recommendation)
	b.WriteString(rec + "\n\n")

	b.WriteString(f.bar("Overall Readiness", r.Overall) + "\n")
	b.WriteString(f.bar("Confidence", r.Confidence) + "\n\n")

	f.writeScore(&b, "Psychological Fit", r.Psychometric)
	f.writeScore(&b, "Technical Readiness", r.Technical)

	b.WriteString(theme.Heading.Render("WISCAR Analysis") + "\n")
	for _, fs := range r.Wiscar {
		b.WriteString(f.bar(fs.Name, fs.Score) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("Next Steps") + "\n")
	for i, step := range r.NextSteps {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, step)) + "\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (f *ConsoleFormatter) writeScore(b *strings.Builder, title string, s Score) {
	b.WriteString(theme.Heading.Render(title) + "\n")
	b.WriteString(f.bar(s.Interpretation, s.Score) + "\n")
	b.WriteString(theme.Hint.Width(f.width).Render(s.Details) + "\n\n")
}

func (f *ConsoleFormatter) bar(label string, score int) string {
	p := components.NewScoreBar(label, score, f.width)
	p.LabelWidth = barLabelWidth
	return p.View()
}
