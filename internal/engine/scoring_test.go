package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// scoringAnswers builds a detailed-scoring answer set totalling the given
// score. It walks the catalog picking the highest-point option per question
// until the target is met, then the lowest.
func scoringAnswers(t *testing.T, cat Catalog, target int) map[string]model.Answer {
	t.Helper()

	answers := map[string]model.Answer{}
	remaining := target
	for _, q := range cat.Scoring {
		var best, worst model.Answer
		bestPts := -1
		worstPts := 1 << 30
		for _, opt := range q.Options {
			pts := q.Score(opt)
			if pts > bestPts {
				best, bestPts = opt, pts
			}
			if pts < worstPts {
				worst, worstPts = opt, pts
			}
		}
		if remaining >= bestPts {
			answers[q.ID] = best
			remaining -= bestPts
		} else if remaining >= 1 {
			// Pick a mid option worth exactly the remainder if one exists.
			picked := false
			for _, opt := range q.Options {
				if q.Score(opt) == remaining {
					answers[q.ID] = opt
					remaining = 0
					picked = true
					break
				}
			}
			if !picked {
				answers[q.ID] = worst
			}
		} else {
			answers[q.ID] = worst
		}
	}
	require.Zero(t, remaining, "cannot build scoring answers for target %d", target)
	return answers
}

func runScoring(t *testing.T, in Input) (State, error) {
	t.Helper()
	return evaluateScoring(DefaultCatalog(), NewState("m", "o", PolicyBinary), in)
}

func TestScoringBounds(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()
	assert.Equal(t, 14, cat.MaxScore())

	s, err := runScoring(t, Input{Answers: scoringAnswers(t, cat, 14)})
	require.NoError(t, err)
	require.NotNil(t, s.GPAIScore)
	assert.Equal(t, 14, *s.GPAIScore)
	assert.Equal(t, model.ClassGPAI, s.Classification)

	s, err = runScoring(t, Input{Answers: scoringAnswers(t, cat, 0)})
	require.NoError(t, err)
	require.NotNil(t, s.GPAIScore)
	assert.Equal(t, 0, *s.GPAIScore)
	assert.Equal(t, model.ClassNotGPAI, s.Classification)
}

func TestScoringThresholdBoundaries(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()

	cases := []struct {
		score   int
		class   model.Classification
		pending Pending
	}{
		{score: 10, class: model.ClassGPAI, pending: PendingNone},
		{score: 9, class: model.ClassBorderline, pending: PendingGPAICall},
		{score: 6, class: model.ClassBorderline, pending: PendingGPAICall},
		{score: 5, class: model.ClassNotGPAI, pending: PendingNone},
	}

	for _, tc := range cases {
		s, err := runScoring(t, Input{Answers: scoringAnswers(t, cat, tc.score)})
		require.NoError(t, err)
		require.NotNil(t, s.GPAIScore)
		assert.Equal(t, tc.score, *s.GPAIScore)
		assert.Equal(t, tc.class, s.Classification)
		assert.Equal(t, tc.pending, s.Pending)
	}
}

func TestBorderlineManualOverride(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()
	borderline := scoringAnswers(t, cat, 7)

	t.Run("decision with rationale finalizes", func(t *testing.T) {
		t.Parallel()
		s, err := runScoring(t, Input{
			Answers:       borderline,
			GPAIDecision:  model.DecideGPAI,
			GPAIRationale: "broad downstream adoption despite mid score",
		})
		require.NoError(t, err)
		assert.Equal(t, model.ClassGPAI, s.Classification)
		assert.Equal(t, PendingNone, s.Pending)
		assert.NotEmpty(t, s.GPAIRationale)
	})

	t.Run("decision overrides score downward too", func(t *testing.T) {
		t.Parallel()
		s, err := runScoring(t, Input{
			Answers:       borderline,
			GPAIDecision:  model.DecideNotGPAI,
			GPAIRationale: "generality is superficial",
		})
		require.NoError(t, err)
		assert.Equal(t, model.ClassNotGPAI, s.Classification)
	})

	t.Run("decision without rationale is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := runScoring(t, Input{
			Answers:      borderline,
			GPAIDecision: model.DecideGPAI,
		})
		assert.ErrorIs(t, err, ErrMissingRationale)
	})

	t.Run("unknown decision is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := runScoring(t, Input{
			Answers:       borderline,
			GPAIDecision:  "Maybe",
			GPAIRationale: "unsure",
		})
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})

	t.Run("no decision stays pending", func(t *testing.T) {
		t.Parallel()
		s, err := runScoring(t, Input{Answers: borderline})
		require.NoError(t, err)
		assert.Equal(t, model.ClassBorderline, s.Classification)
		assert.Equal(t, PendingGPAICall, s.Pending)
		assert.False(t, s.Terminal())
	})
}

func TestScoringRejectsInvalidAnswer(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()
	answers := scoringAnswers(t, cat, 14)
	answers[QModality] = "Hologram"

	_, err := runScoring(t, Input{Answers: answers})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}
