package engine

import "github.com/modelaudit/gpai-cli/internal/model"

// evaluatePreScreen applies the elimination formula
//
//	(paramsBelow AND narrowData) OR singleTask OR noAdaptation
//
// The conjunction covers only the first pair; the last two conditions
// eliminate on their own. The asymmetry is part of the questionnaire and is
// kept exactly as published.
func evaluatePreScreen(cat Catalog, s State, in Input) (State, error) {
	answers := make(map[string]model.Answer, len(cat.PreScreen))
	for _, q := range cat.PreScreen {
		var (
			a   model.Answer
			err error
		)
		s, a, err = takeAnswer(s, in, StagePreScreen, q)
		if err != nil {
			return s, err
		}
		answers[q.ID] = a
	}

	paramsBelow := answers[QParamsBelow] == model.Yes
	narrowData := answers[QNarrowData] == model.Yes
	singleTask := answers[QSingleTask] == model.Yes
	noAdaptation := answers[QNoAdaptation] == model.Yes

	if (paramsBelow && narrowData) || singleTask || noAdaptation {
		s.Classification = model.ClassEliminated
	}
	return s, nil
}
