package engine

import (
	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// Detailed scoring thresholds. Scores at or above ThresholdGPAI classify as
// GPAI automatically; below ThresholdBorderline as not GPAI; the band in
// between requires a manual rationale-backed call.
const (
	ThresholdGPAI       = 10
	ThresholdBorderline = 6
)

// evaluateScoring runs the seven-question weighted GPAI assessment.
func evaluateScoring(cat Catalog, s State, in Input) (State, error) {
	score := 0
	for _, q := range cat.Scoring {
		var (
			a   model.Answer
			err error
		)
		s, a, err = takeAnswer(s, in, StageScoring, q)
		if err != nil {
			return s, err
		}
		score += q.Score(a)
	}
	s.GPAIScore = &score

	switch {
	case score >= ThresholdGPAI:
		s.Classification = model.ClassGPAI
	case score >= ThresholdBorderline:
		return resolveGPAICall(s, in)
	default:
		s.Classification = model.ClassNotGPAI
	}
	return s, nil
}

// resolveGPAICall handles the borderline score band. Without a manual
// decision the run stays pending; with one, the decision overrides the score
// but only alongside a non-empty rationale.
func resolveGPAICall(s State, in Input) (State, error) {
	if in.GPAIDecision == "" {
		s.Classification = model.ClassBorderline
		s.Pending = PendingGPAICall
		return s, nil
	}
	if in.GPAIRationale == "" {
		return s, eris.Wrap(ErrMissingRationale, "borderline GPAI decision")
	}
	switch in.GPAIDecision {
	case model.DecideGPAI:
		s.Classification = model.ClassGPAI
	case model.DecideNotGPAI:
		s.Classification = model.ClassNotGPAI
	default:
		return s, eris.Wrapf(ErrInvalidAnswer, "GPAI decision %q", string(in.GPAIDecision))
	}
	s.GPAIRationale = in.GPAIRationale
	return s, nil
}
