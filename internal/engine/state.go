// Package engine implements the staged GPAI classification pipeline: an
// ordered chain of gates and scorers over immutable per-run state. The engine
// performs no I/O; answer collection and rendering belong to its callers.
package engine

import (
	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// Error taxonomy. All are precondition failures surfaced to the caller;
// none are recovered internally.
var (
	// ErrInvalidAnswer marks an answer outside a question's option set, or
	// an MCDA rating outside the 1-5 scale.
	ErrInvalidAnswer = eris.New("engine: answer outside the question's option set")

	// ErrMissingAnswer marks a reached stage with no recorded answer for one
	// of its questions.
	ErrMissingAnswer = eris.New("engine: missing answer for a required question")

	// ErrMissingRationale marks a manual borderline decision supplied without
	// a rationale. The stage stays pending until both are present.
	ErrMissingRationale = eris.New("engine: manual decision requires a non-empty rationale")

	// ErrIncompleteState marks an export-record assembly attempt before the
	// pipeline reached a terminal verdict.
	ErrIncompleteState = eris.New("engine: export record requires a terminal verdict")
)

// Policy selects the modification-assessment scoring policy.
type Policy string

const (
	// PolicyBinary marks the modification substantial if any of the four
	// Yes/No sub-questions is answered "Yes".
	PolicyBinary Policy = "binary"

	// PolicyMCDA scores five weighted criterion groups on a 1-5 impact scale
	// and marks the modification substantial above an overall score of 3.5.
	PolicyMCDA Policy = "mcda"
)

// ParsePolicy converts a config string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyBinary:
		return PolicyBinary, nil
	case PolicyMCDA:
		return PolicyMCDA, nil
	}
	return "", eris.Errorf("engine: unknown modification policy %q (want binary or mcda)", s)
}

// Pending names a borderline stage waiting on a manual decision.
type Pending string

const (
	PendingNone     Pending = ""
	PendingGPAICall Pending = "gpai_call"
	PendingRiskCall Pending = "risk_call"
)

// Input carries everything the collaborator collected for one run. Answers
// and Ratings are keyed by bare question / criterion id; the engine namespaces
// them by stage when recording.
type Input struct {
	ModelName  string
	ModelOwner string

	Answers map[string]model.Answer
	Ratings map[string]int

	// Manual borderline decisions, each only honored with a rationale.
	GPAIDecision  model.ManualDecision
	GPAIRationale string
	RiskDecision  model.ManualDecision
	RiskRationale string
}

// State is the per-run assessment state threaded through the pipeline.
// Stages never mutate a State they receive; recording helpers return copies,
// and answers are append-only.
type State struct {
	ModelName  string
	ModelOwner string
	Policy     Policy

	// Answers maps namespaced keys ("prescreen.single_task") to the recorded
	// answer. Ratings maps MCDA criterion ids to their 1-5 rating.
	Answers map[string]model.Answer
	Ratings map[string]int

	ModificationScore *float64
	GPAIScore         *int

	Classification model.Classification
	SystemicRisk   model.SystemicRisk

	GPAIRationale string
	RiskRationale string

	Pending Pending
}

// NewState returns the initial state for a run.
func NewState(name, owner string, policy Policy) State {
	return State{
		ModelName:    name,
		ModelOwner:   owner,
		Policy:       policy,
		Answers:      map[string]model.Answer{},
		Ratings:      map[string]int{},
		SystemicRisk: model.RiskNotAssessed,
	}
}

// Key returns the stage-namespaced answer key for a question id.
func Key(stage Stage, id string) string {
	return string(stage) + "." + id
}

// Answer returns the recorded answer for a stage question.
func (s State) Answer(stage Stage, id string) (model.Answer, bool) {
	a, ok := s.Answers[Key(stage, id)]
	return a, ok
}

// Terminal reports whether the run has reached a final verdict: no pending
// manual stage, a terminal classification, and — for GPAI models — a resolved
// systemic-risk verdict.
func (s State) Terminal() bool {
	if s.Pending != PendingNone || !s.Classification.Terminal() {
		return false
	}
	if s.Classification == model.ClassGPAI {
		return s.SystemicRisk == model.RiskWith || s.SystemicRisk == model.RiskWithout
	}
	return true
}

// withAnswer validates an answer against the question's option set and
// returns a copy of the state with it recorded.
func (s State) withAnswer(stage Stage, q model.Question, a model.Answer) (State, error) {
	if !q.Allows(a) {
		return s, eris.Wrapf(ErrInvalidAnswer, "question %s got %q", q.ID, string(a))
	}
	next := s
	next.Answers = make(map[string]model.Answer, len(s.Answers)+1)
	for k, v := range s.Answers {
		next.Answers[k] = v
	}
	next.Answers[Key(stage, q.ID)] = a
	return next, nil
}

// withRating validates a 1-5 MCDA rating and returns a copy with it recorded.
func (s State) withRating(c model.Criterion, rating int) (State, error) {
	if rating < model.RatingMin || rating > model.RatingMax {
		return s, eris.Wrapf(ErrInvalidAnswer, "criterion %s got rating %d", c.ID, rating)
	}
	next := s
	next.Ratings = make(map[string]int, len(s.Ratings)+1)
	for k, v := range s.Ratings {
		next.Ratings[k] = v
	}
	next.Ratings[c.ID] = rating
	return next, nil
}

// takeAnswer pulls the input answer for a question, validates it and records
// it in a new state.
func takeAnswer(s State, in Input, stage Stage, q model.Question) (State, model.Answer, error) {
	a, ok := in.Answers[q.ID]
	if !ok {
		return s, "", eris.Wrapf(ErrMissingAnswer, "stage %s question %s", string(stage), q.ID)
	}
	next, err := s.withAnswer(stage, q, a)
	if err != nil {
		return s, "", err
	}
	return next, a, nil
}
