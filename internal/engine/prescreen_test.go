package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/gpai-cli/internal/model"
)

func yn(b bool) model.Answer {
	if b {
		return model.Yes
	}
	return model.No
}

// The elimination formula (A AND B) OR C OR D is pinned against its full
// truth table.
func TestPreScreenTruthTable(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()

	for i := 0; i < 16; i++ {
		a := i&1 != 0 // params below 1B
		b := i&2 != 0 // narrow training data
		c := i&4 != 0 // single task
		d := i&8 != 0 // no adaptation

		want := (a && b) || c || d

		t.Run(fmt.Sprintf("a=%v_b=%v_c=%v_d=%v", a, b, c, d), func(t *testing.T) {
			t.Parallel()

			in := Input{Answers: map[string]model.Answer{
				QParamsBelow:  yn(a),
				QNarrowData:   yn(b),
				QSingleTask:   yn(c),
				QNoAdaptation: yn(d),
			}}

			s, err := evaluatePreScreen(cat, NewState("m", "o", PolicyBinary), in)
			require.NoError(t, err)

			if want {
				assert.Equal(t, model.ClassEliminated, s.Classification)
			} else {
				assert.Empty(t, s.Classification)
			}
		})
	}
}

func TestPreScreenRecordsAllAnswers(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()
	in := Input{Answers: map[string]model.Answer{
		QParamsBelow:  model.No,
		QNarrowData:   model.Yes,
		QSingleTask:   model.No,
		QNoAdaptation: model.No,
	}}

	s, err := evaluatePreScreen(cat, NewState("m", "o", PolicyBinary), in)
	require.NoError(t, err)

	for id, want := range in.Answers {
		got, ok := s.Answer(StagePreScreen, id)
		require.True(t, ok, id)
		assert.Equal(t, want, got)
	}
}

func TestPreScreenMissingAnswer(t *testing.T) {
	t.Parallel()

	cat := DefaultCatalog()
	in := Input{Answers: map[string]model.Answer{
		QParamsBelow: model.No,
	}}

	_, err := evaluatePreScreen(cat, NewState("m", "o", PolicyBinary), in)
	assert.ErrorIs(t, err, ErrMissingAnswer)
}
