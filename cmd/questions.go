package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vrfit/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions (optionally filtered by category)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var questions []catalog.Question
		if category != "" {
			cat := catalog.Category(category)
			if !slices.Contains(catalog.AllCategories(), cat) {
				return fmt.Errorf("unknown category %q (valid: %s)", category, categoryNames())
			}
			questions = catalog.ByCategory(cat)
		} else {
			questions = catalog.All()
		}

		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-16s  %-13s  %-28s  %7s  %s\n",
			"ID", "Category", "Subcategory", "Options", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 115))

		for _, q := range questions {
			prompt := q.Prompt
			if len(prompt) > 40 {
				prompt = prompt[:37] + "..."
			}
			fmt.Fprintf(out, "%-16s  %-13s  %-28s  %7d  %s\n",
				q.ID, q.Category, q.Subcategory, len(q.Options), prompt)
		}

		fmt.Fprintf(out, "\n%d questions\n", len(questions))
		return nil
	},
}

func categoryNames() string {
	cats := catalog.AllCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func init() {
	questionsCmd.Flags().String("category", "", "Filter by category ("+categoryNames()+")")
}
