package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// WriteTable writes an aligned key/value summary of the record for terminal
// output.
func WriteTable(w io.Writer, rec model.ExportRecord) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%-30s %s\n", "Model Name:", rec.ModelName)
	fmt.Fprintf(&b, "%-30s %s\n", "Model Owner:", rec.ModelOwner)
	fmt.Fprintf(&b, "%-30s %s\n", "Final Classification:", rec.Classification)
	fmt.Fprintf(&b, "%-30s %s\n", "Systemic Risk:", rec.SystemicRisk)
	if rec.ModificationScore != nil {
		fmt.Fprintf(&b, "%-30s %.2f\n", "Modification Score:", *rec.ModificationScore)
	}
	if rec.GPAIScore != nil {
		fmt.Fprintf(&b, "%-30s %d / 14\n", "GPAI Score:", *rec.GPAIScore)
	}
	if rec.GPAIRationale != "" {
		fmt.Fprintf(&b, "%-30s %s\n", "GPAI Rationale:", rec.GPAIRationale)
	}
	if rec.RiskRationale != "" {
		fmt.Fprintf(&b, "%-30s %s\n", "Systemic Risk Rationale:", rec.RiskRationale)
	}

	if len(rec.Answers) > 0 {
		b.WriteString("\nRecorded Answers:\n")
		for _, f := range rec.Answers {
			fmt.Fprintf(&b, "  %-35s %s\n", f.Key, f.Value)
		}
	}

	b.WriteString("\nObligations:\n")
	if len(rec.Obligations) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, o := range rec.Obligations {
		fmt.Fprintf(&b, "  - %s\n", o)
	}

	_, err := io.WriteString(w, b.String())
	return eris.Wrap(err, "export: write table")
}
