package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/modelaudit/gpai-cli/internal/export"
	"github.com/modelaudit/gpai-cli/internal/model"
	"github.com/modelaudit/gpai-cli/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List persisted assessment runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one persisted assessment run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	f := runsCmd.Flags()
	f.String("classification", "", "filter by final classification")
	f.Int("limit", 20, "maximum number of runs to list")
	f.Int("offset", 0, "number of runs to skip")

	runsCmd.AddCommand(runsShowCmd)
	rootCmd.AddCommand(runsCmd)
}

func runRunsList(cmd *cobra.Command, _ []string) error {
	classification, _ := cmd.Flags().GetString("classification")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	st, err := newStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(cmd.Context(), store.RunFilter{
		Classification: model.Classification(classification),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	fmt.Printf("%-36s %-25s %-35s %-25s %s\n", "ID", "Model", "Classification", "Systemic Risk", "Created")
	fmt.Println(strings.Repeat("-", 140))
	for _, r := range runs {
		name := r.Record.ModelName
		if len(name) > 25 {
			name = name[:22] + "..."
		}
		fmt.Printf("%-36s %-25s %-35s %-25s %s\n",
			r.ID, name, r.Record.Classification, r.Record.SystemicRisk,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	st, err := newStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if run == nil {
		return eris.Errorf("runs: no run with id %s", args[0])
	}

	fmt.Printf("Run %s (created %s)\n\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04"))
	return export.WriteTable(os.Stdout, run.Record)
}
