package export

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// WriteReport writes a one-sheet XLSX summary of the record: identity,
// verdicts, scores, recorded answers and the obligation list.
func WriteReport(w io.Writer, rec model.ExportRecord) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Assessment")
	if err != nil {
		return eris.Wrap(err, "export: add report sheet")
	}

	addRow := func(cells ...string) {
		row := sheet.AddRow()
		for _, c := range cells {
			row.AddCell().Value = c
		}
	}

	addRow("GPAI Classification Report")
	addRow()
	addRow("Model Name", rec.ModelName)
	addRow("Model Owner", rec.ModelOwner)
	addRow("Final Classification", string(rec.Classification))
	addRow("Systemic Risk Classification", string(rec.SystemicRisk))
	if rec.ModificationScore != nil {
		addRow("Modification Score", fmt.Sprintf("%.2f", *rec.ModificationScore))
	}
	if rec.GPAIScore != nil {
		addRow("GPAI Score", fmt.Sprintf("%d / 14", *rec.GPAIScore))
	}
	if rec.GPAIRationale != "" {
		addRow("GPAI Rationale", rec.GPAIRationale)
	}
	if rec.RiskRationale != "" {
		addRow("Systemic Risk Rationale", rec.RiskRationale)
	}

	if len(rec.Answers) > 0 {
		addRow()
		addRow("Recorded Answers")
		for _, f := range rec.Answers {
			addRow(f.Key, f.Value)
		}
	}

	addRow()
	addRow("Obligations")
	if len(rec.Obligations) == 0 {
		addRow("(none)")
	}
	for _, o := range rec.Obligations {
		addRow(o)
	}

	return eris.Wrap(file.Write(w), "export: write report")
}
