package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelaudit/gpai-cli/internal/model"
)

const sampleYAML = `
model_name: atlas-70b
model_owner: Atlas Labs
policy: mcda
answers:
  auto_exclude: "No"
  origin: "Internally Developed"
  modality: "Multi-modal"
ratings:
  purpose_domain_shift: 4
manual:
  gpai_decision: "GPAI"
  gpai_rationale: "broad capability demonstrated across benchmarks"
`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "atlas-70b", doc.ModelName)
	assert.Equal(t, "Atlas Labs", doc.ModelOwner)
	assert.Equal(t, "mcda", doc.Policy)
	assert.Equal(t, "No", doc.Answers["auto_exclude"])
	assert.Equal(t, 4, doc.Ratings["purpose_domain_shift"])
	assert.Equal(t, "GPAI", doc.Manual.GPAIDecision)
}

func TestParseRequiresModelName(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(`answers: {auto_exclude: "No"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model_name")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(`
model_name: m
surprise_field: true
`))
	assert.Error(t, err)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("model_name: [unclosed"))
	assert.Error(t, err)
}

func TestToEngine(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	in := doc.ToEngine()
	assert.Equal(t, "atlas-70b", in.ModelName)
	assert.Equal(t, model.No, in.Answers["auto_exclude"])
	assert.Equal(t, model.OriginInternal, in.Answers["origin"])
	assert.Equal(t, 4, in.Ratings["purpose_domain_shift"])
	assert.Equal(t, model.DecideGPAI, in.GPAIDecision)
	assert.Equal(t, "broad capability demonstrated across benchmarks", in.GPAIRationale)
	assert.Empty(t, in.RiskDecision)
}
