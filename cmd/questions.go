package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelaudit/gpai-cli/internal/engine"
	"github.com/modelaudit/gpai-cli/internal/model"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question catalog",
	Long:  "Prints every question id, prompt and option set so answers files can be prepared by hand or by another tool.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat := engine.DefaultCatalog()

		printStage := func(title string, qs []model.Question) {
			fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
			for _, q := range qs {
				fmt.Printf("  %-22s %s\n", q.ID, q.Prompt)
				fmt.Printf("  %-22s options: %s\n", "", joinAnswers(q.Options))
				if q.Guidance != "" {
					fmt.Printf("  %-22s guidance: %s\n", "", q.Guidance)
				}
			}
		}

		printStage("Step 1: Automatic Exclusion", cat.Exclusion)
		printStage("Step 2: Provider Determination", cat.Provider)
		printStage("Step 3a: Modification (binary policy)", cat.Modification)

		fmt.Println("\nStep 3a: Modification (MCDA policy, ratings 1-5)")
		fmt.Println(strings.Repeat("-", 47))
		for _, g := range cat.Groups {
			fmt.Printf("  %s (weight %.0f%%)\n", g.Name, g.Weight*100)
			for _, c := range g.Subcriteria {
				fmt.Printf("    %-28s %s\n", c.ID, c.Prompt)
			}
		}

		printStage("Step 3: Pre-screening", cat.PreScreen)
		printStage("Step 4: Detailed GPAI Scoring", cat.Scoring)
		printStage("Step 5: Systemic Risk", cat.SysRisk)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)
}

func joinAnswers(opts []model.Answer) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = string(o)
	}
	return strings.Join(parts, " / ")
}
