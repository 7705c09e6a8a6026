package engine

import "github.com/modelaudit/gpai-cli/internal/model"

// evaluateExclusion runs the automatic exclusion gate. A model that
// self-declares as one of the narrow archetype categories is excluded
// outright and no further stage runs.
func evaluateExclusion(cat Catalog, s State, in Input) (State, error) {
	q, _ := cat.Question(StageExclusion, QAutoExclude)
	s, a, err := takeAnswer(s, in, StageExclusion, q)
	if err != nil {
		return s, err
	}
	if a == model.Yes {
		s.Classification = model.ClassExcluded
	}
	return s, nil
}
