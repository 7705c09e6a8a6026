package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/modelaudit/gpai-cli/internal/engine"
	"github.com/modelaudit/gpai-cli/internal/export"
	"github.com/modelaudit/gpai-cli/internal/input"
	"github.com/modelaudit/gpai-cli/internal/model"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Classify a model from a YAML answers file",
	Long: `Runs the full classification pipeline over an answers file and prints the
resulting export record.

Stages run in fixed order: exclusion, provider determination, modification
assessment (modified third-party models only), pre-screening, detailed GPAI
scoring, systemic risk (GPAI verdicts only). A gate that fires halts the run
with its verdict; later questions are never consulted.

Borderline outcomes (GPAI score 6-9, or systemic-risk reach/scaffolding
signals) need a manual decision plus rationale in the "manual" section of the
answers file before the run can complete.

Examples:
  # Classify and print a summary table
  assess --input model.yaml

  # Write the audit row as CSV and a formatted XLSX report
  assess --input model.yaml --format csv --output record.csv --report record.xlsx

  # Persist the completed record for later listing
  assess --input model.yaml --save`,
	RunE: runAssess,
}

func init() {
	f := assessCmd.Flags()
	f.String("input", "", "path to the YAML answers file (required)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table or csv")
	f.String("report", "", "also write a formatted XLSX report to this path")
	f.String("policy", "", "modification policy: binary or mcda (default from config)")
	f.Bool("save", false, "persist the completed record to the store")
	_ = assessCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	reportPath, _ := cmd.Flags().GetString("report")
	policyFlag, _ := cmd.Flags().GetString("policy")
	save, _ := cmd.Flags().GetBool("save")

	if format != "table" && format != "csv" {
		return eris.Errorf("assess: --format must be table or csv (got %q)", format)
	}

	log := zap.L().With(zap.String("command", "assess"))

	f, err := os.Open(inputPath)
	if err != nil {
		return eris.Wrapf(err, "assess: open %s", inputPath)
	}
	doc, err := input.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	// Policy precedence: flag, answers file, config.
	policyName := cfg.Engine.Policy
	if doc.Policy != "" {
		policyName = doc.Policy
	}
	if policyFlag != "" {
		policyName = policyFlag
	}
	policy, err := engine.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	pipeline, err := engine.New(engine.DefaultCatalog(), policy)
	if err != nil {
		return err
	}

	log.Info("running assessment",
		zap.String("model", doc.ModelName),
		zap.String("policy", string(policy)),
	)

	res, err := pipeline.Run(doc.ToEngine())
	if err != nil {
		return err
	}

	if res.Pending() != engine.PendingNone {
		printPending(res)
		return nil
	}

	rec := *res.Record

	if err := writeRecord(rec, format, outputPath); err != nil {
		return err
	}

	if reportPath != "" {
		rf, err := os.Create(reportPath)
		if err != nil {
			return eris.Wrapf(err, "assess: create report %s", reportPath)
		}
		err = export.WriteReport(rf, rec)
		if cerr := rf.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return eris.Wrapf(err, "assess: write report %s", reportPath)
		}
	}

	if save {
		st, err := newStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		run, err := st.SaveRecord(cmd.Context(), rec)
		if err != nil {
			return err
		}
		fmt.Printf("Saved assessment %s\n", run.ID)
	}

	return nil
}

func printPending(res engine.Result) {
	switch res.Pending() {
	case engine.PendingGPAICall:
		score := 0
		if res.State.GPAIScore != nil {
			score = *res.State.GPAIScore
		}
		fmt.Printf("Borderline: GPAI score %d needs a manual call.\n", score)
		fmt.Println("Add manual.gpai_decision (GPAI / Not-GPAI) and manual.gpai_rationale to the answers file and rerun.")
	case engine.PendingRiskCall:
		fmt.Println("Borderline: systemic-risk signals need a manual call.")
		fmt.Println("Add manual.risk_decision (With systemic risk / Without systemic risk) and manual.risk_rationale to the answers file and rerun.")
	}
}

func writeRecord(rec model.ExportRecord, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "assess: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "csv":
		return export.WriteCSV(w, rec)
	default:
		return export.WriteTable(w, rec)
	}
}
