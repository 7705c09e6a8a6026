// Package input parses the answers document collaborators submit — a YAML
// file on the CLI path, the same shape as JSON on the HTTP path — into an
// engine.Input.
package input

import (
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/modelaudit/gpai-cli/internal/engine"
	"github.com/modelaudit/gpai-cli/internal/model"
)

// Document is the serialized answers form. Answers and Ratings use bare
// question / criterion ids; the engine namespaces them by stage.
type Document struct {
	ModelName  string `yaml:"model_name" json:"model_name"`
	ModelOwner string `yaml:"model_owner" json:"model_owner"`

	// Policy optionally overrides the configured modification policy.
	Policy string `yaml:"policy,omitempty" json:"policy,omitempty"`

	Answers map[string]string `yaml:"answers" json:"answers"`
	Ratings map[string]int    `yaml:"ratings,omitempty" json:"ratings,omitempty"`

	Manual Manual `yaml:"manual,omitempty" json:"manual,omitempty"`
}

// Manual carries the borderline decisions and their rationales.
type Manual struct {
	GPAIDecision  string `yaml:"gpai_decision,omitempty" json:"gpai_decision,omitempty"`
	GPAIRationale string `yaml:"gpai_rationale,omitempty" json:"gpai_rationale,omitempty"`
	RiskDecision  string `yaml:"risk_decision,omitempty" json:"risk_decision,omitempty"`
	RiskRationale string `yaml:"risk_rationale,omitempty" json:"risk_rationale,omitempty"`
}

// Parse reads a YAML answers document.
func Parse(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, eris.Wrap(err, "input: parse answers document")
	}
	if doc.ModelName == "" {
		return Document{}, eris.New("input: model_name is required")
	}
	return doc, nil
}

// ToEngine converts the document into the engine's input form.
func (d Document) ToEngine() engine.Input {
	in := engine.Input{
		ModelName:     d.ModelName,
		ModelOwner:    d.ModelOwner,
		Answers:       make(map[string]model.Answer, len(d.Answers)),
		Ratings:       d.Ratings,
		GPAIDecision:  model.ManualDecision(d.Manual.GPAIDecision),
		GPAIRationale: d.Manual.GPAIRationale,
		RiskDecision:  model.ManualDecision(d.Manual.RiskDecision),
		RiskRationale: d.Manual.RiskRationale,
	}
	for id, a := range d.Answers {
		in.Answers[id] = model.Answer(a)
	}
	return in
}
