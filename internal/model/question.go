package model

// Question is one item in the fixed assessment catalog: a stable id, the
// prompt shown to the user, the closed option set, and optional per-option
// points for scored stages.
type Question struct {
	ID       string         `json:"id"`
	Prompt   string         `json:"prompt"`
	Options  []Answer       `json:"options"`
	Points   map[Answer]int `json:"points,omitempty"`
	Guidance string         `json:"guidance,omitempty"`
}

// Allows reports whether a is in the question's option set.
func (q Question) Allows(a Answer) bool {
	for _, opt := range q.Options {
		if opt == a {
			return true
		}
	}
	return false
}

// Score returns the points awarded for an answer. Questions without a points
// table score zero for every answer.
func (q Question) Score(a Answer) int {
	if q.Points == nil {
		return 0
	}
	return q.Points[a]
}

// Criterion is a single MCDA subcriterion rated on the 1-5 impact scale
// (1 = no or negligible change, 5 = fundamental change).
type Criterion struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// CriterionGroup is a named MCDA category with a fixed weight and its
// subcriteria. Group weights across the catalog sum to 1.0.
type CriterionGroup struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Weight      float64     `json:"weight"`
	Subcriteria []Criterion `json:"subcriteria"`
}

// RatingMin and RatingMax bound the MCDA impact scale.
const (
	RatingMin = 1
	RatingMax = 5
)
