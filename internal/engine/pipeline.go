package engine

import (
	"go.uber.org/zap"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// Pipeline composes the classification stages in their fixed order:
// exclusion, provider, modification (modified third-party models only),
// pre-screening, detailed scoring, systemic risk (GPAI only).
type Pipeline struct {
	catalog Catalog
	policy  Policy
}

// New builds a pipeline over a validated catalog.
func New(catalog Catalog, policy Policy) (*Pipeline, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	return &Pipeline{catalog: catalog, policy: policy}, nil
}

// Catalog exposes the pipeline's questionnaire for collaborators that render
// prompts or validate input files.
func (p *Pipeline) Catalog() Catalog {
	return p.catalog
}

// Result is the outcome of one run. Record is nil while a borderline stage
// awaits its manual decision; re-running with the decision and rationale
// filled in completes the run.
type Result struct {
	State       State
	Record      *model.ExportRecord
	Obligations []string
}

// Pending reports the manual stage the run is waiting on, if any.
func (r Result) Pending() Pending {
	return r.State.Pending
}

// Run executes the pipeline over the supplied input. Each stage either
// produces the state for the next stage or halts the run with a verdict;
// stages after a halt never execute. Errors are precondition violations
// (invalid or missing answers, decisions without rationale) and leave no
// partial verdict behind.
func (p *Pipeline) Run(in Input) (Result, error) {
	log := zap.L().With(zap.String("model", in.ModelName))

	s := NewState(in.ModelName, in.ModelOwner, p.policy)

	s, err := evaluateExclusion(p.catalog, s, in)
	if err != nil || s.Classification.Terminal() {
		return p.finish(s, log, err)
	}

	s, needsModification, err := evaluateProvider(p.catalog, s, in)
	if err != nil || s.Classification.Terminal() {
		return p.finish(s, log, err)
	}

	if needsModification {
		s, err = evaluateModification(p.catalog, s, in)
		if err != nil || s.Classification.Terminal() {
			return p.finish(s, log, err)
		}
	}

	s, err = evaluatePreScreen(p.catalog, s, in)
	if err != nil || s.Classification.Terminal() {
		return p.finish(s, log, err)
	}

	s, err = evaluateScoring(p.catalog, s, in)
	if err != nil || s.Pending != PendingNone || s.Classification != model.ClassGPAI {
		return p.finish(s, log, err)
	}

	s, err = evaluateSysRisk(p.catalog, s, in)
	return p.finish(s, log, err)
}

// finish assembles the result for a run that errored, halted, or went
// pending.
func (p *Pipeline) finish(s State, log *zap.Logger, err error) (Result, error) {
	if err != nil {
		return Result{State: s}, err
	}

	res := Result{
		State:       s,
		Obligations: Obligations(s.Classification, s.SystemicRisk),
	}
	if !s.Terminal() {
		log.Debug("run pending manual decision", zap.String("pending", string(s.Pending)))
		return res, nil
	}

	rec, err := AssembleRecord(p.catalog, s)
	if err != nil {
		return res, err
	}
	res.Record = &rec

	log.Debug("run complete",
		zap.String("classification", string(s.Classification)),
		zap.String("systemic_risk", string(s.SystemicRisk)),
	)
	return res, nil
}
