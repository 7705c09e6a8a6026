package engine

import "github.com/modelaudit/gpai-cli/internal/model"

// evaluateProvider determines provider status. Using an unmodified
// third-party model means no provider obligations at all, so the run halts.
// Internally developed models skip the modification assessment entirely;
// modified third-party models go through it next.
func evaluateProvider(cat Catalog, s State, in Input) (State, bool, error) {
	origin, _ := cat.Question(StageProvider, QOrigin)
	s, originAns, err := takeAnswer(s, in, StageProvider, origin)
	if err != nil {
		return s, false, err
	}
	if originAns == model.OriginInternal {
		return s, false, nil
	}

	modified, _ := cat.Question(StageProvider, QModified)
	s, modAns, err := takeAnswer(s, in, StageProvider, modified)
	if err != nil {
		return s, false, err
	}
	if modAns == model.No {
		s.Classification = model.ClassNotAProvider
		return s, false, nil
	}
	return s, true, nil
}
