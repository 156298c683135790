package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/vrfit/internal/catalog"
)

// MarkdownFormatter writes a report as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes r to w as Markdown.
func (f *MarkdownFormatter) Format(w io.Writer, r Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Assessment Report\n\n", r.Track)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "**Report ID:** `%s`\n\n", r.ID)
	fmt.Fprintf(&b, "**Answered:** %d of %d\n\n", r.Answered, r.Total)
	b.WriteString(strings.Repeat("-", 50) + "\n\n")

	b.WriteString("## Recommendation\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", r.Recommendation)
	b.WriteString("| Metric | Score |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Overall Readiness | %d%% |\n", r.Overall)
	fmt.Fprintf(&b, "| Confidence | %d%% |\n", r.Confidence)
	fmt.Fprintf(&b, "| Psychological Fit | %d%% |\n", r.Psychometric.Score)
	fmt.Fprintf(&b, "| Technical Readiness | %d%% |\n", r.Technical.Score)
	b.WriteString("\n")

	writeScoreSection(&b, "Psychological Fit", r.Psychometric)
	writeScoreSection(&b, "Technical Readiness", r.Technical)

	b.WriteString("## WISCAR Analysis\n\n")
	b.WriteString("| Factor | Score |\n")
	b.WriteString("|--------|-------|\n")
	for _, fs := range r.Wiscar {
		fmt.Fprintf(&b, "| %s | %d%% |\n", fs.Name, fs.Score)
	}
	b.WriteString("\n")

	b.WriteString("## Next Steps\n\n")
	for i, step := range r.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n")

	b.WriteString("## Career Paths\n\n")
	for _, c := range catalog.Careers {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\n")

	b.WriteString("## Learning Resources\n\n")
	for _, res := range catalog.Resources {
		fmt.Fprintf(&b, "- **%s**: %s\n", res.Label, res.Description)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeScoreSection(b *strings.Builder, title string, s Score) {
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintf(b, "**%s** (%d%%)\n\n", s.Interpretation, s.Score)
	fmt.Fprintf(b, "%s\n\n", s.Details)
}
