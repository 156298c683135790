// Package report renders a scored assessment for the non-interactive CLI.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vrfit/internal/catalog"
	"github.com/abhisek/vrfit/internal/scoring"
)

// ToolName identifies the producer in every report header.
const ToolName = "vrfit"

// Score is one category score with its interpretation.
type Score struct {
	Score          int    `json:"score" yaml:"score"`
	Band           string `json:"band" yaml:"band"`
	Interpretation string `json:"interpretation" yaml:"interpretation"`
	Details        string `json:"details" yaml:"details"`
}

// FactorScore is a single WISCAR factor.
type FactorScore struct {
	Factor string `json:"factor" yaml:"factor"`
	Name   string `json:"name" yaml:"name"`
	Score  int    `json:"score" yaml:"score"`
}

// Report is the serialisable outcome of one questionnaire.
type Report struct {
	ID             string        `json:"id" yaml:"id"`
	GeneratedAt    time.Time     `json:"generatedAt" yaml:"generatedAt"`
	Tool           string        `json:"tool" yaml:"tool"`
	Version        string        `json:"version" yaml:"version"`
	Track          string        `json:"track" yaml:"track"`
	Answered       int           `json:"answered" yaml:"answered"`
	Total          int           `json:"total" yaml:"total"`
	Psychometric   Score         `json:"psychometric" yaml:"psychometric"`
	Technical      Score         `json:"technical" yaml:"technical"`
	Wiscar         []FactorScore `json:"wiscar" yaml:"wiscar"`
	Overall        int           `json:"overall" yaml:"overall"`
	Confidence     int           `json:"confidence" yaml:"confidence"`
	Tier           string        `json:"tier" yaml:"tier"`
	Recommendation string        `json:"recommendation" yaml:"recommendation"`
	NextSteps      []string      `json:"nextSteps" yaml:"nextSteps"`
}

// New builds a report from a scoring result. answered is the number of
// catalog questions present in the scored answer set.
func New(res scoring.Result, answered int, version string) Report {
	wiscar := make([]FactorScore, 0, len(catalog.AllFactors()))
	for _, f := range catalog.AllFactors() {
		wiscar = append(wiscar, FactorScore{
			Factor: string(f),
			Name:   f.DisplayName(),
			Score:  res.Wiscar[f],
		})
	}

	steps := make([]string, len(res.NextSteps))
	copy(steps, res.NextSteps)

	return Report{
		ID:             uuid.New().String(),
		GeneratedAt:    time.Now().UTC().Truncate(time.Second),
		Tool:           ToolName,
		Version:        version,
		Track:          catalog.Track,
		Answered:       answered,
		Total:          catalog.Len(),
		Psychometric:   fromScoreResult(res.Psychometric),
		Technical:      fromScoreResult(res.Technical),
		Wiscar:         wiscar,
		Overall:        res.Overall,
		Confidence:     res.Confidence,
		Tier:           res.Tier.String(),
		Recommendation: res.Recommendation,
		NextSteps:      steps,
	}
}

func fromScoreResult(s scoring.ScoreResult) Score {
	return Score{
		Score:          s.Score,
		Band:           s.Band.String(),
		Interpretation: s.Interpretation,
		Details:        s.Details,
	}
}

// Formatter writes a report in one output format.
type Formatter interface {
	Format(w io.Writer, r Report) error
}

// NewFormatter returns the formatter registered for format.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(), nil
	case "json":
		return NewJSONFormatter(true), nil
	case "markdown":
		return NewMarkdownFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Write renders r to w using the named format.
func Write(w io.Writer, format string, r Report) error {
	f, err := NewFormatter(format)
	if err != nil {
		return err
	}
	return f.Format(w, r)
}
