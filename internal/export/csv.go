// Package export renders an assembled export record into the supported
// output targets: a single-row CSV, an aligned text summary, and an XLSX
// report. It never recomputes scores or verdicts; the record is final.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// Fixed identity and verdict columns. Answer columns follow, in record
// order, then scores, obligations and rationales.
var leadColumns = []string{
	"Model Name",
	"Model Owner",
	"Final Classification",
	"Systemic Risk Classification",
}

var tailColumns = []string{
	"Modification Score",
	"GPAI Score",
	"Obligations",
	"GPAI Rationale",
	"Systemic Risk Rationale",
}

// Columns returns the CSV header and row for a record. The record's answer
// fields are already ordered by the catalog, so output is deterministic.
func Columns(rec model.ExportRecord) (header, row []string) {
	header = append(header, leadColumns...)
	row = append(row,
		rec.ModelName,
		rec.ModelOwner,
		string(rec.Classification),
		string(rec.SystemicRisk),
	)

	for _, f := range rec.Answers {
		header = append(header, f.Key)
		row = append(row, f.Value)
	}

	header = append(header, tailColumns...)
	row = append(row,
		formatScore(rec.ModificationScore),
		formatInt(rec.GPAIScore),
		strings.Join(rec.Obligations, "; "),
		rec.GPAIRationale,
		rec.RiskRationale,
	)
	return header, row
}

// WriteCSV writes the record as a header plus one data row.
func WriteCSV(w io.Writer, rec model.ExportRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header, row := Columns(rec)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write CSV header")
	}
	if err := cw.Write(row); err != nil {
		return eris.Wrap(err, "export: write CSV row")
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush CSV")
}

func formatScore(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
