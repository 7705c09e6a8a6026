package engine

import "github.com/modelaudit/gpai-cli/internal/model"

// Obligation labels, ordered as they appear in export output. The baseline
// set applies to every GPAI provider; the systemic-risk set is a strict
// superset.
var (
	baselineObligations = []string{
		"Maintain technical documentation",
		"Publish a public summary of training content",
		"Adopt a copyright-compliance policy",
	}

	systemicRiskObligations = []string{
		"Maintain technical documentation",
		"Publish a public summary of training content",
		"Adopt a copyright-compliance policy",
		"Perform systemic-risk assessment and mitigation",
		"Monitor and report serious incidents",
		"Ensure adequate cybersecurity protection",
	}
)

// Obligations maps a verdict pair to the applicable obligation set. Any
// non-GPAI classification, and any unresolved borderline, yields no
// obligations.
func Obligations(c model.Classification, r model.SystemicRisk) []string {
	if c != model.ClassGPAI {
		return []string{}
	}
	switch r {
	case model.RiskWith:
		out := make([]string, len(systemicRiskObligations))
		copy(out, systemicRiskObligations)
		return out
	case model.RiskWithout:
		out := make([]string, len(baselineObligations))
		copy(out, baselineObligations)
		return out
	}
	return []string{}
}
