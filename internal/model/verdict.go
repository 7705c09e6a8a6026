package model

// Classification is the GPAI-level verdict.
type Classification string

const (
	ClassExcluded          Classification = "Excluded"
	ClassNotAProvider      Classification = "Not a Provider"
	ClassEliminated        Classification = "Eliminated (Not GPAI)"
	ClassMinorModification Classification = "Minor Modification (Not a Provider)"
	ClassGPAI              Classification = "GPAI"
	ClassNotGPAI           Classification = "Not GPAI"
	ClassBorderline        Classification = "Borderline (pending manual review)"
)

// Terminal reports whether the classification ends the pipeline. Borderline
// is the one non-terminal label: it resolves only through a manual decision.
func (c Classification) Terminal() bool {
	return c != "" && c != ClassBorderline
}

// SystemicRisk is the systemic-risk verdict, assessed only for models whose
// GPAI-level verdict is ClassGPAI.
type SystemicRisk string

const (
	RiskNotAssessed SystemicRisk = "Not Assessed"
	RiskWith        SystemicRisk = "With Systemic Risk"
	RiskWithout     SystemicRisk = "Without Systemic Risk"
	RiskBorderline  SystemicRisk = "Borderline (pending manual review)"
)
