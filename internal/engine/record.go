package engine

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// AssembleRecord flattens a terminal state into the write-once export record.
// Column order follows the catalog, so assembling the same state twice yields
// identical output. A non-terminal state is rejected.
func AssembleRecord(cat Catalog, s State) (model.ExportRecord, error) {
	if !s.Terminal() {
		if s.Pending != PendingNone {
			return model.ExportRecord{}, eris.Wrapf(ErrIncompleteState, "pending %s", string(s.Pending))
		}
		return model.ExportRecord{}, eris.Wrap(ErrIncompleteState, "no terminal verdict")
	}

	rec := model.ExportRecord{
		ModelName:         s.ModelName,
		ModelOwner:        s.ModelOwner,
		Classification:    s.Classification,
		SystemicRisk:      s.SystemicRisk,
		ModificationScore: s.ModificationScore,
		GPAIScore:         s.GPAIScore,
		Obligations:       Obligations(s.Classification, s.SystemicRisk),
		GPAIRationale:     s.GPAIRationale,
		RiskRationale:     s.RiskRationale,
	}

	appendStage := func(stage Stage, qs []model.Question) {
		for _, q := range qs {
			if a, ok := s.Answer(stage, q.ID); ok {
				rec.Answers = append(rec.Answers, model.RecordField{
					Key:   Key(stage, q.ID),
					Value: string(a),
				})
			}
		}
	}

	appendStage(StageExclusion, cat.Exclusion)
	appendStage(StageProvider, cat.Provider)
	appendStage(StageModification, cat.Modification)
	for _, g := range cat.Groups {
		for _, c := range g.Subcriteria {
			if rating, ok := s.Ratings[c.ID]; ok {
				rec.Answers = append(rec.Answers, model.RecordField{
					Key:   Key(StageModification, c.ID),
					Value: strconv.Itoa(rating),
				})
			}
		}
	}
	appendStage(StagePreScreen, cat.PreScreen)
	appendStage(StageScoring, cat.Scoring)
	appendStage(StageSysRisk, cat.SysRisk)

	return rec, nil
}
