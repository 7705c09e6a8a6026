package engine

import (
	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// evaluateSysRisk runs the systemic-risk gate, reached only when the
// GPAI-level verdict is GPAI. Training compute and state-of-the-art
// capability are hard triggers: either alone settles the verdict with no
// manual override. Reach and scaffolding only open a borderline call.
func evaluateSysRisk(cat Catalog, s State, in Input) (State, error) {
	answers := make(map[string]model.Answer, len(cat.SysRisk))
	for _, q := range cat.SysRisk {
		var (
			a   model.Answer
			err error
		)
		s, a, err = takeAnswer(s, in, StageSysRisk, q)
		if err != nil {
			return s, err
		}
		answers[q.ID] = a
	}

	flops := answers[QFlops] == model.Yes
	stateOfArt := answers[QStateOfArt] == model.Yes
	scalability := answers[QScalability] == model.Yes
	scaffolding := answers[QScaffolding] == model.Yes

	switch {
	case flops || stateOfArt:
		s.SystemicRisk = model.RiskWith
	case scalability || scaffolding:
		return resolveRiskCall(s, in)
	default:
		s.SystemicRisk = model.RiskWithout
	}
	return s, nil
}

// resolveRiskCall handles the borderline systemic-risk band. The manual
// decision is final once supplied with a rationale.
func resolveRiskCall(s State, in Input) (State, error) {
	if in.RiskDecision == "" {
		s.SystemicRisk = model.RiskBorderline
		s.Pending = PendingRiskCall
		return s, nil
	}
	if in.RiskRationale == "" {
		return s, eris.Wrap(ErrMissingRationale, "borderline systemic-risk decision")
	}
	switch in.RiskDecision {
	case model.DecideWithRisk:
		s.SystemicRisk = model.RiskWith
	case model.DecideWithoutRisk:
		s.SystemicRisk = model.RiskWithout
	default:
		return s, eris.Wrapf(ErrInvalidAnswer, "systemic-risk decision %q", string(in.RiskDecision))
	}
	s.RiskRationale = in.RiskRationale
	return s, nil
}
