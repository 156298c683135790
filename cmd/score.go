package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vrfit/internal/answers"
	"github.com/abhisek/vrfit/internal/catalog"
	"github.com/abhisek/vrfit/internal/report"
	"github.com/abhisek/vrfit/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive UI",
	Long: "Score reads answers from --answers (JSON or YAML, question ID to option index) " +
		"and/or repeated --answer id=index flags, then prints a report.",
	Example: "  vrfit score --answers answers.yaml --format json\n" +
		"  vrfit score --answer interest_1=4 --answer aptitude_1=1",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(false)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		path, _ := cmd.Flags().GetString("answers")
		pairs, _ := cmd.Flags().GetStringArray("answer")
		lenient, _ := cmd.Flags().GetBool("lenient")

		raw, err := collectAnswers(path, pairs)
		if err != nil {
			return err
		}

		set, err := parseAnswers(raw, lenient, log)
		if err != nil {
			return fmt.Errorf("parse answers: %w", err)
		}

		res := scoring.Evaluate(set)
		rep := report.New(res, len(set), version)

		w, closeFn, err := openOutput(cmd.OutOrStdout(), cfg.Output)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := report.Write(w, cfg.Format, rep); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		log.Info("report written",
			zap.String("id", rep.ID),
			zap.String("format", cfg.Format),
			zap.Int("answered", rep.Answered),
			zap.Int("overall", rep.Overall),
			zap.String("tier", rep.Tier),
		)
		return nil
	},
}

func init() {
	flags := scoreCmd.Flags()
	flags.String("answers", "", "Path to a JSON or YAML answers file")
	flags.StringArray("answer", nil, "Answer as id=index (repeatable, overrides --answers)")
	flags.Bool("lenient", false, "Skip invalid answers instead of failing")
	flags.String("format", "", "Output format: console, json, markdown, yaml")
	flags.StringP("output", "o", "", "Write the report to this file instead of stdout")
}

// collectAnswers merges file answers with flag pairs, flags winning.
func collectAnswers(path string, pairs []string) (map[string]string, error) {
	var fromFile map[string]string
	if path != "" {
		loaded, err := answers.LoadFile(path)
		if err != nil {
			return nil, err
		}
		fromFile = loaded
	}

	fromFlags, err := answers.ParsePairs(pairs)
	if err != nil {
		return nil, err
	}
	return answers.Merge(fromFile, fromFlags), nil
}

// parseAnswers validates raw answers. In lenient mode invalid entries are
// logged and dropped instead of failing the command.
func parseAnswers(raw map[string]string, lenient bool, log *zap.Logger) (catalog.AnswerSet, error) {
	if !lenient {
		return scoring.ParseAnswers(raw)
	}
	set, problems := scoring.ParseAnswersLenient(raw)
	for _, p := range problems {
		log.Warn("skipping answer",
			zap.String("question", p.QuestionID),
			zap.String("value", p.Value),
			zap.Error(p.Err),
		)
	}
	return set, nil
}

// openOutput returns stdout when path is empty, otherwise a created file.
func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
