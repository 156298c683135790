package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level commands.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI in an isolated working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vrfit (devel)\n", out)
}

func TestQuestions(t *testing.T) {
	out, err := run(t, "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "interest_1")
	assert.Contains(t, out, "21 questions")
}

func TestQuestions_Category(t *testing.T) {
	out, err := run(t, "questions", "--category", "wiscar")
	require.NoError(t, err)
	assert.Contains(t, out, "6 questions")
	assert.NotContains(t, out, "interest_1")

	_, err = run(t, "questions", "--category", "astrology")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
	assert.Contains(t, err.Error(), "psychometric, technical, wiscar")
}

// Every --answer pair in the score help text must name a real question.
func TestScore_ExampleAnswersAreValid(t *testing.T) {
	args := []string{"score", "--format", "json"}
	for _, line := range strings.Split(scoreCmd.Example, "\n") {
		fields := strings.Fields(line)
		for i := 0; i+1 < len(fields); i++ {
			if fields[i] == "--answer" {
				args = append(args, "--answer", fields[i+1])
			}
		}
	}
	require.Greater(t, len(args), 3, "example has no --answer pairs")

	_, err := run(t, args...)
	require.NoError(t, err)
}

func TestScore_FlagsToJSON(t *testing.T) {
	out, err := run(t, "score", "--format", "json",
		"--answer", "interest_1=4", "--answer", "aptitude_1=1")
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.EqualValues(t, 2, rep["answered"])
	assert.EqualValues(t, 100, rep["technical"].(map[string]any)["score"])
}

func TestScore_FileAndOutput(t *testing.T) {
	dir := t.TempDir()
	answersPath := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(answersPath, []byte("interest_1: 4\ninterest_2: \"4\"\n"), 0o644))
	outPath := filepath.Join(dir, "report.md")

	out, err := run(t, "score", "--answers", answersPath, "--format", "markdown", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# VR Simulation Engineer Assessment Report"))
	assert.Contains(t, string(data), "**Answered:** 2 of 21")
}

func TestScore_StrictRejectsBadAnswers(t *testing.T) {
	_, err := run(t, "score", "--answer", "interest_1=9", "--answer", "nope=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse answers")
	assert.Contains(t, err.Error(), "nope")
}

func TestScore_LenientSkipsBadAnswers(t *testing.T) {
	out, err := run(t, "score", "--lenient", "--format", "yaml",
		"--log-file", filepath.Join(t.TempDir(), "vrfit.log"),
		"--answer", "interest_1=9", "--answer", "interest_2=4")
	require.NoError(t, err)
	assert.Contains(t, out, "answered: 1")
}

func TestScore_ConfigFileFormat(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vrfit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: yaml\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "score", "--answer", "interest_1=0")
	require.NoError(t, err)
	assert.Contains(t, out, "tool: vrfit")
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestScore_InvalidFormat(t *testing.T) {
	_, err := run(t, "score", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
