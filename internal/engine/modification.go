package engine

import (
	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// substantialThreshold is the MCDA cutoff: an overall score strictly above
// it marks the modification substantial; exactly 3.5 is still minor.
const substantialThreshold = 3.5

// evaluateModification runs the configured modification policy. A
// non-substantial modification means the user is not a provider and the run
// halts; a substantial one continues to pre-screening.
func evaluateModification(cat Catalog, s State, in Input) (State, error) {
	var (
		substantial bool
		err         error
	)
	switch s.Policy {
	case PolicyMCDA:
		s, substantial, err = assessMCDA(cat, s, in)
	default:
		s, substantial, err = assessBinary(cat, s, in)
	}
	if err != nil {
		return s, err
	}
	if !substantial {
		s.Classification = model.ClassMinorModification
	}
	return s, nil
}

// assessBinary applies the binary flag policy: any "Yes" across the four
// sub-questions marks the modification substantial.
func assessBinary(cat Catalog, s State, in Input) (State, bool, error) {
	substantial := false
	for _, q := range cat.Modification {
		var (
			a   model.Answer
			err error
		)
		s, a, err = takeAnswer(s, in, StageModification, q)
		if err != nil {
			return s, false, err
		}
		if a == model.Yes {
			substantial = true
		}
	}
	return s, substantial, nil
}

// assessMCDA applies the weighted multi-criteria policy: every subcriterion
// is rated 1-5, each group contributes the unweighted mean of its ratings,
// and the overall score is the weighted sum across groups.
func assessMCDA(cat Catalog, s State, in Input) (State, bool, error) {
	for _, g := range cat.Groups {
		for _, c := range g.Subcriteria {
			rating, ok := in.Ratings[c.ID]
			if !ok {
				return s, false, missingRating(g, c)
			}
			var err error
			s, err = s.withRating(c, rating)
			if err != nil {
				return s, false, err
			}
		}
	}

	overall := OverallScore(cat.Groups, s.Ratings)
	s.ModificationScore = &overall
	return s, overall > substantialThreshold, nil
}

func missingRating(g model.CriterionGroup, c model.Criterion) error {
	return eris.Wrapf(ErrMissingAnswer, "group %s criterion %s", g.ID, c.ID)
}

// GroupAverage returns the arithmetic mean of a group's subcriteria ratings.
// It depends only on that group's own subcriteria.
func GroupAverage(g model.CriterionGroup, ratings map[string]int) float64 {
	if len(g.Subcriteria) == 0 {
		return 0
	}
	sum := 0
	for _, c := range g.Subcriteria {
		sum += ratings[c.ID]
	}
	return float64(sum) / float64(len(g.Subcriteria))
}

// OverallScore returns the convex combination of group averages using the
// fixed group weights. With weights summing to 1.0 and ratings in 1-5, the
// result lies in [1,5].
func OverallScore(groups []model.CriterionGroup, ratings map[string]int) float64 {
	score := 0.0
	for _, g := range groups {
		score += g.Weight * GroupAverage(g, ratings)
	}
	return score
}
