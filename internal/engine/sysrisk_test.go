package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/gpai-cli/internal/model"
)

func riskAnswers(flops, soa, scale, scaffold bool) map[string]model.Answer {
	return map[string]model.Answer{
		QFlops:       yn(flops),
		QStateOfArt:  yn(soa),
		QScalability: yn(scale),
		QScaffolding: yn(scaffold),
	}
}

func runSysRisk(t *testing.T, in Input) (State, error) {
	t.Helper()
	s := NewState("m", "o", PolicyBinary)
	s.Classification = model.ClassGPAI
	return evaluateSysRisk(DefaultCatalog(), s, in)
}

func TestSysRiskHardTrigger(t *testing.T) {
	t.Parallel()

	t.Run("flops alone triggers", func(t *testing.T) {
		t.Parallel()
		s, err := runSysRisk(t, Input{Answers: riskAnswers(true, false, false, false)})
		require.NoError(t, err)
		assert.Equal(t, model.RiskWith, s.SystemicRisk)
		assert.Equal(t, PendingNone, s.Pending)
	})

	t.Run("state of the art alone triggers", func(t *testing.T) {
		t.Parallel()
		s, err := runSysRisk(t, Input{Answers: riskAnswers(false, true, false, false)})
		require.NoError(t, err)
		assert.Equal(t, model.RiskWith, s.SystemicRisk)
	})

	t.Run("hard trigger ignores manual decision", func(t *testing.T) {
		t.Parallel()
		s, err := runSysRisk(t, Input{
			Answers:       riskAnswers(true, false, true, true),
			RiskDecision:  model.DecideWithoutRisk,
			RiskRationale: "should be ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, model.RiskWith, s.SystemicRisk)
		assert.Empty(t, s.RiskRationale)
	})
}

func TestSysRiskAllNo(t *testing.T) {
	t.Parallel()

	s, err := runSysRisk(t, Input{Answers: riskAnswers(false, false, false, false)})
	require.NoError(t, err)
	assert.Equal(t, model.RiskWithout, s.SystemicRisk)
}

func TestSysRiskBorderline(t *testing.T) {
	t.Parallel()

	t.Run("scalability without decision stays pending", func(t *testing.T) {
		t.Parallel()
		s, err := runSysRisk(t, Input{Answers: riskAnswers(false, false, true, false)})
		require.NoError(t, err)
		assert.Equal(t, model.RiskBorderline, s.SystemicRisk)
		assert.Equal(t, PendingRiskCall, s.Pending)
		assert.False(t, s.Terminal())
	})

	t.Run("decision with rationale is final", func(t *testing.T) {
		t.Parallel()
		s, err := runSysRisk(t, Input{
			Answers:       riskAnswers(false, false, false, true),
			RiskDecision:  model.DecideWithRisk,
			RiskRationale: "scaffolding pathways documented in red-team report",
		})
		require.NoError(t, err)
		assert.Equal(t, model.RiskWith, s.SystemicRisk)
		assert.Equal(t, PendingNone, s.Pending)
	})

	t.Run("decision without rationale is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := runSysRisk(t, Input{
			Answers:      riskAnswers(false, false, true, false),
			RiskDecision: model.DecideWithoutRisk,
		})
		assert.ErrorIs(t, err, ErrMissingRationale)
	})
}
