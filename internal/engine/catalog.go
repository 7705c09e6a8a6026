package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/modelaudit/gpai-cli/internal/model"
)

// Stage names the pipeline stages. Stage names prefix answer keys in the
// export record.
type Stage string

const (
	StageExclusion    Stage = "exclusion"
	StageProvider     Stage = "provider"
	StageModification Stage = "modification"
	StagePreScreen    Stage = "prescreen"
	StageScoring      Stage = "scoring"
	StageSysRisk      Stage = "sysrisk"
)

// Question ids, grouped by stage.
const (
	QAutoExclude = "auto_exclude"

	QOrigin   = "origin"
	QModified = "modified"

	QModParams      = "mod_params"
	QModPurpose     = "mod_purpose"
	QModData        = "mod_data"
	QModIntegration = "mod_integration"

	QParamsBelow  = "params_below_1b"
	QNarrowData   = "narrow_training_data"
	QSingleTask   = "single_task"
	QNoAdaptation = "no_adaptation"

	QParams1B    = "params_1b"
	QTraining    = "training_scale"
	QMultiTask   = "multi_task"
	QGenerative  = "generative"
	QModality    = "modality"
	QIntegration = "integration"
	QUseCases    = "use_cases"

	QFlops       = "flops_10e25"
	QStateOfArt  = "state_of_art"
	QScalability = "reach_scalability"
	QScaffolding = "scaffolding_potential"
)

var yesNo = []model.Answer{model.Yes, model.No}

// exclusionArchetypes is the closed list of specialized model categories that
// trigger automatic exclusion.
var exclusionArchetypes = []string{
	"Rule-based expert systems",
	"Small-scale or narrow ML classifiers",
	"Traditional statistical models (e.g. linear regression)",
	"Single-purpose computer vision models",
	"Single-purpose NLP models",
	"Single-purpose recommendation systems",
	"Specialized anomaly detection systems",
	"Robotic process automation (RPA) systems",
	"Embedded single-task IoT AI systems",
}

// exclusionQuestions gates the entire pipeline.
var exclusionQuestions = []model.Question{
	{
		ID:       QAutoExclude,
		Prompt:   "Does the model clearly belong to one of the specialized archetype categories?",
		Options:  yesNo,
		Guidance: strings.Join(exclusionArchetypes, "; "),
	},
}

var providerQuestions = []model.Question{
	{
		ID:      QOrigin,
		Prompt:  "Was the model developed internally or by a third party?",
		Options: []model.Answer{model.OriginInternal, model.OriginThirdParty},
	},
	{
		ID:      QModified,
		Prompt:  "Has the third-party model been modified in any way?",
		Options: yesNo,
	},
}

// modificationQuestions are the binary-policy sub-questions. Any "Yes" marks
// the modification substantial.
var modificationQuestions = []model.Question{
	{
		ID:      QModParams,
		Prompt:  "Have more than 10% of the model's parameters or architecture been significantly changed?",
		Options: yesNo,
	},
	{
		ID:      QModPurpose,
		Prompt:  "Has the intended purpose or functionality significantly changed or expanded?",
		Options: yesNo,
	},
	{
		ID:      QModData,
		Prompt:  "Has significant retraining occurred on specialized or distinctly different datasets?",
		Options: yesNo,
	},
	{
		ID:      QModIntegration,
		Prompt:  "Does the modification significantly alter the model's ease of integration or use in diverse downstream systems?",
		Options: yesNo,
	},
}

// criterionGroups are the MCDA-policy categories. Weights sum to 1.0 and are
// fixed; only the subcriteria ratings vary per run.
var criterionGroups = []model.CriterionGroup{
	{
		ID:     "intended_purpose",
		Name:   "Intended Purpose Change",
		Weight: 0.30,
		Subcriteria: []model.Criterion{
			{ID: "purpose_domain_shift", Prompt: "Shift of the model's application domain or intended purpose"},
			{ID: "purpose_capability_expansion", Prompt: "Expansion of the capability set beyond the original purpose"},
			{ID: "purpose_user_base", Prompt: "Change in the intended user base or deployment context"},
		},
	},
	{
		ID:     "architecture",
		Name:   "Architectural / Algorithmic Change",
		Weight: 0.25,
		Subcriteria: []model.Criterion{
			{ID: "arch_parameter_delta", Prompt: "Share of parameters changed, added or removed"},
			{ID: "arch_structure_change", Prompt: "Structural changes to layers, heads or training objectives"},
		},
	},
	{
		ID:     "data_training",
		Name:   "Data / Training Change",
		Weight: 0.20,
		Subcriteria: []model.Criterion{
			{ID: "data_new_sources", Prompt: "Introduction of new or distinctly different data sources"},
			{ID: "data_retraining_depth", Prompt: "Depth of retraining or fine-tuning performed"},
			{ID: "data_distribution_shift", Prompt: "Shift in the training data distribution"},
		},
	},
	{
		ID:     "performance_risk",
		Name:   "Performance / Risk Profile Change",
		Weight: 0.15,
		Subcriteria: []model.Criterion{
			{ID: "perf_benchmark_delta", Prompt: "Change in benchmark performance relative to the base model"},
			{ID: "perf_risk_profile", Prompt: "Change in the model's risk profile or failure modes"},
		},
	},
	{
		ID:     "deployment",
		Name:   "Future Deployment Change",
		Weight: 0.10,
		Subcriteria: []model.Criterion{
			{ID: "deploy_integration_surface", Prompt: "Change in the integration surface exposed to downstream systems"},
			{ID: "deploy_future_scope", Prompt: "Intended broadening of future deployment scope"},
		},
	},
}

var preScreenQuestions = []model.Question{
	{
		ID:      QParamsBelow,
		Prompt:  "Is the model's parameter count significantly below 1 billion?",
		Options: yesNo,
	},
	{
		ID:      QNarrowData,
		Prompt:  "Was the model trained on highly specialized or limited datasets rather than large and diverse ones?",
		Options: yesNo,
	},
	{
		ID:      QSingleTask,
		Prompt:  "Does the model exclusively demonstrate competent performance on a single or very narrow task?",
		Options: yesNo,
	},
	{
		ID:      QNoAdaptation,
		Prompt:  "Is there no clear pathway (fine-tuning, prompt engineering, APIs) to adapt the model to different downstream tasks?",
		Options: yesNo,
	},
}

// scoringQuestions carry per-option points; the maximum total is 14.
var scoringQuestions = []model.Question{
	{
		ID:      QParams1B,
		Prompt:  "Does the model have at least 1 billion parameters?",
		Options: yesNo,
		Points:  map[model.Answer]int{model.Yes: 2, model.No: 0},
	},
	{
		ID:      QTraining,
		Prompt:  "Was the model trained on large and diverse datasets using self-supervision or other large-scale (semi-)unsupervised methods?",
		Options: []model.Answer{model.Yes, model.Partly, model.No},
		Points:  map[model.Answer]int{model.Yes: 2, model.Partly: 1, model.No: 0},
	},
	{
		ID:      QMultiTask,
		Prompt:  "Does the model demonstrate competent performance in multiple, distinct tasks?",
		Options: []model.Answer{model.Yes, model.Partly, model.No},
		Points:  map[model.Answer]int{model.Yes: 2, model.Partly: 1, model.No: 0},
	},
	{
		ID:      QGenerative,
		Prompt:  "Can the model generate new content (text, images, audio or video) adaptable to various downstream tasks or domains?",
		Options: []model.Answer{model.Yes, model.Partly, model.No},
		Points:  map[model.Answer]int{model.Yes: 2, model.Partly: 1, model.No: 0},
	},
	{
		ID:      QModality,
		Prompt:  "What data modality does the model handle?",
		Options: []model.Answer{model.ModalityMulti, model.ModalityFlexible, model.ModalitySpecialized},
		Points:  map[model.Answer]int{model.ModalityMulti: 2, model.ModalityFlexible: 1, model.ModalitySpecialized: 0},
	},
	{
		ID:      QIntegration,
		Prompt:  "Can the model be readily integrated, fine-tuned or prompt-engineered for new applications?",
		Options: yesNo,
		Points:  map[model.Answer]int{model.Yes: 2, model.No: 0},
	},
	{
		ID:      QUseCases,
		Prompt:  "Are there multiple known or intended downstream use cases spanning different domains?",
		Options: []model.Answer{model.Yes, model.Partial, model.No},
		Points:  map[model.Answer]int{model.Yes: 2, model.Partial: 1, model.No: 0},
	},
}

var sysRiskQuestions = []model.Question{
	{
		ID:      QFlops,
		Prompt:  "Did training compute reach or exceed 10^25 FLOP?",
		Options: yesNo,
	},
	{
		ID:      QStateOfArt,
		Prompt:  "Does the model match or exceed state-of-the-art capability?",
		Options: yesNo,
	},
	{
		ID:      QScalability,
		Prompt:  "Does the model have significant reach or scalability across the market?",
		Options: yesNo,
	},
	{
		ID:      QScaffolding,
		Prompt:  "Could the model serve as scaffolding for harmful applications?",
		Options: yesNo,
	},
}

// Catalog bundles the full fixed questionnaire. One Catalog value serves the
// whole process; it is never mutated after Validate.
type Catalog struct {
	Exclusion    []model.Question
	Provider     []model.Question
	Modification []model.Question
	Groups       []model.CriterionGroup
	PreScreen    []model.Question
	Scoring      []model.Question
	SysRisk      []model.Question
}

// DefaultCatalog returns the built-in questionnaire.
func DefaultCatalog() Catalog {
	return Catalog{
		Exclusion:    exclusionQuestions,
		Provider:     providerQuestions,
		Modification: modificationQuestions,
		Groups:       criterionGroups,
		PreScreen:    preScreenQuestions,
		Scoring:      scoringQuestions,
		SysRisk:      sysRiskQuestions,
	}
}

// MaxScore is the highest attainable detailed GPAI score.
func (c Catalog) MaxScore() int {
	total := 0
	for _, q := range c.Scoring {
		best := 0
		for _, pts := range q.Points {
			if pts > best {
				best = pts
			}
		}
		total += best
	}
	return total
}

// Question looks up a question by stage and id.
func (c Catalog) Question(stage Stage, id string) (model.Question, bool) {
	for _, q := range c.stageQuestions(stage) {
		if q.ID == id {
			return q, true
		}
	}
	return model.Question{}, false
}

func (c Catalog) stageQuestions(stage Stage) []model.Question {
	switch stage {
	case StageExclusion:
		return c.Exclusion
	case StageProvider:
		return c.Provider
	case StageModification:
		return c.Modification
	case StagePreScreen:
		return c.PreScreen
	case StageScoring:
		return c.Scoring
	case StageSysRisk:
		return c.SysRisk
	}
	return nil
}

// Validate checks the catalog is internally consistent: unique non-empty ids,
// at least two options per question, and MCDA weights summing to 1.0.
func (c Catalog) Validate() error {
	var errs []string

	seen := make(map[string]bool)
	check := func(qs []model.Question) {
		for _, q := range qs {
			switch {
			case q.ID == "":
				errs = append(errs, "question with empty id")
			case seen[q.ID]:
				errs = append(errs, "duplicate question id "+q.ID)
			default:
				seen[q.ID] = true
			}
			if q.Prompt == "" {
				errs = append(errs, "question "+q.ID+" has no prompt")
			}
			if len(q.Options) < 2 {
				errs = append(errs, "question "+q.ID+" needs at least two options")
			}
			for a := range q.Points {
				if !q.Allows(a) {
					errs = append(errs, "question "+q.ID+" scores unknown option "+string(a))
				}
			}
		}
	}
	check(c.Exclusion)
	check(c.Provider)
	check(c.Modification)
	check(c.PreScreen)
	check(c.Scoring)
	check(c.SysRisk)

	var weightSum float64
	for _, g := range c.Groups {
		weightSum += g.Weight
		if g.Weight <= 0 {
			errs = append(errs, "criterion group "+g.ID+" has non-positive weight")
		}
		if len(g.Subcriteria) == 0 {
			errs = append(errs, "criterion group "+g.ID+" has no subcriteria")
		}
		for _, sc := range g.Subcriteria {
			if sc.ID == "" {
				errs = append(errs, "criterion group "+g.ID+" has a subcriterion with empty id")
			} else if seen[sc.ID] {
				errs = append(errs, "duplicate criterion id "+sc.ID)
			} else {
				seen[sc.ID] = true
			}
		}
	}
	if len(c.Groups) > 0 && math.Abs(weightSum-1.0) > 1e-9 {
		errs = append(errs, fmt.Sprintf("criterion group weights must sum to 1.0, got %.4f", weightSum))
	}

	if len(errs) > 0 {
		return eris.Errorf("catalog: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
