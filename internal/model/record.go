package model

import "time"

// RecordField is one flattened answer column in an export record. Keys are
// namespaced by stage ("prescreen.single_task") so stages can never collide.
type RecordField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ExportRecord is the write-once audit row produced after a completed run.
// Field order is fixed by the catalog, so assembling the record twice from
// the same final state yields identical output.
type ExportRecord struct {
	ModelName         string         `json:"model_name"`
	ModelOwner        string         `json:"model_owner"`
	Classification    Classification `json:"classification"`
	SystemicRisk      SystemicRisk   `json:"systemic_risk"`
	Answers           []RecordField  `json:"answers"`
	ModificationScore *float64       `json:"modification_score,omitempty"`
	GPAIScore         *int           `json:"gpai_score,omitempty"`
	Obligations       []string       `json:"obligations"`
	GPAIRationale     string         `json:"gpai_rationale,omitempty"`
	RiskRationale     string         `json:"risk_rationale,omitempty"`
}

// Answer returns the recorded value for a namespaced key, or "" if the stage
// that would have produced it never ran.
func (r ExportRecord) Answer(key string) string {
	for _, f := range r.Answers {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// AssessmentRun is a persisted export record with store metadata. The
// timestamp is attached by the store, never by record assembly.
type AssessmentRun struct {
	ID        string       `json:"id"`
	Record    ExportRecord `json:"record"`
	CreatedAt time.Time    `json:"created_at"`
}
