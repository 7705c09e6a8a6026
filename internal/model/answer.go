package model

// Answer is a response to a single question, always one of the question's
// declared options. Free-text rationale is carried separately and never
// stored as an Answer.
type Answer string

// Common option values shared across questions.
const (
	Yes     Answer = "Yes"
	No      Answer = "No"
	Partly  Answer = "Partly"
	Partial Answer = "Partial"

	OriginInternal   Answer = "Internally Developed"
	OriginThirdParty Answer = "Third Party"

	ModalityMulti       Answer = "Multi-modal"
	ModalityFlexible    Answer = "Single-flexible"
	ModalitySpecialized Answer = "Single-specialized"
)

// ManualDecision is a reviewer's call on a borderline outcome. It is only
// meaningful together with a non-empty rationale.
type ManualDecision string

const (
	DecideGPAI        ManualDecision = "GPAI"
	DecideNotGPAI     ManualDecision = "Not-GPAI"
	DecideWithRisk    ManualDecision = "With systemic risk"
	DecideWithoutRisk ManualDecision = "Without systemic risk"
)
