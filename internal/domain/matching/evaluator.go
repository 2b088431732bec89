package matching

import (
	"context"
	"fmt"
	"math"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"

	"go.uber.org/zap"
)

type Mode string

const (
	ModeDefault  Mode = "default"
	ModeCategory Mode = "category"
)

const (
	DefaultSemanticWeight = 0.6
	DefaultRuleWeight     = 0.4

	// Fixed blend coefficients of the category-weighted total.
	categoryLocationWeight   = 0.15
	categorySalaryWeight     = 0.15
	categoryEmploymentWeight = 0.10

	// Per-point contribution of the advantage/language bonus dimensions in
	// default mode. The score scale was derived assuming this value; it is
	// not configurable.
	bonusWeight = 0.1
)

// Breakdown is the per-factor decomposition of one evaluated pair. The three
// core factors and semantic similarity sit in [0,1]; advantages and languages
// are bonus dimensions.
type Breakdown struct {
	LocationMatch      float64
	SalaryMatch        float64
	RequirementsMatch  float64
	AdvantagesMatch    float64
	LanguageMatch      float64
	SemanticSimilarity float64
}

// Result carries the final blended score plus its components, all on a 0-100
// scale, and the ordered reason list.
type Result struct {
	Score         float64
	SemanticScore float64
	RuleScore     float64
	Breakdown     Breakdown
	Reasons       []string
}

// SemanticScorer produces a similarity in [0,1] for two flattened texts.
type SemanticScorer interface {
	Similarity(ctx context.Context, jobText, candidateText string) (float64, error)
}

type Evaluator struct {
	semantic       SemanticScorer
	semanticWeight float64
	ruleWeight     float64
	log            *zap.Logger
}

// NewEvaluator builds an evaluator around the given semantic scorer. The two
// weights must sum to 1.0 for the blended percentage to stay bounded; zero
// values select the 0.6/0.4 defaults.
func NewEvaluator(semantic SemanticScorer, semanticWeight, ruleWeight float64, log *zap.Logger) *Evaluator {
	if semanticWeight <= 0 && ruleWeight <= 0 {
		semanticWeight = DefaultSemanticWeight
		ruleWeight = DefaultRuleWeight
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{
		semantic:       semantic,
		semanticWeight: semanticWeight,
		ruleWeight:     ruleWeight,
		log:            log,
	}
}

// Evaluate scores one (job, candidate) pair. A panicking scorer is absorbed
// into a zero-scored, reason-annotated result so a bad record never aborts a
// ranking batch.
func (e *Evaluator) Evaluate(ctx context.Context, j job.Job, c candidate.Candidate, mode Mode) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("match evaluation failed",
				zap.String("job_id", j.ID.String()),
				zap.String("candidate_id", c.ID.String()),
				zap.Any("panic", r),
			)
			res = Result{Reasons: []string{fmt.Sprintf("Error during matching: %v", r)}}
		}
	}()

	semantic := e.semanticScore(ctx, j, c)

	var (
		ruleScore    float64
		breakdown    Breakdown
		reasons      []string
		rejectReason string
	)
	if mode == ModeCategory {
		ruleScore, breakdown, reasons, rejectReason = e.categoryRuleScore(j, c)
	} else {
		ruleScore, breakdown, reasons, rejectReason = e.defaultRuleScore(j, c)
	}
	breakdown.SemanticSimilarity = semantic

	// Hard rejects zero the final score but semantic and rule components are
	// still reported for diagnostics.
	if rejectReason != "" {
		reasons = append(reasons, "REJECTED: "+rejectReason)
		return Result{
			Score:         0.0,
			SemanticScore: round2(semantic * 100),
			RuleScore:     round2(ruleScore * 100),
			Breakdown:     breakdown,
			Reasons:       reasons,
		}
	}

	final := e.semanticWeight*semantic + e.ruleWeight*ruleScore

	return Result{
		Score:         round2(final * 100),
		SemanticScore: round2(semantic * 100),
		RuleScore:     round2(ruleScore * 100),
		Breakdown:     breakdown,
		Reasons:       reasons,
	}
}

func (e *Evaluator) semanticScore(ctx context.Context, j job.Job, c candidate.Candidate) float64 {
	if e.semantic == nil {
		return 0.0
	}

	sim, err := e.semantic.Similarity(ctx, BuildJobText(j), BuildCandidateText(c))
	if err != nil {
		e.log.Warn("semantic scoring failed",
			zap.String("job_id", j.ID.String()),
			zap.String("candidate_id", c.ID.String()),
			zap.Error(err),
		)
		return 0.0
	}
	return clamp01(sim)
}

func (e *Evaluator) defaultRuleScore(j job.Job, c candidate.Candidate) (float64, Breakdown, []string, string) {
	reasons := make([]string, 0, 5)

	locScore, locReason := ScoreLocation(j, c)
	reasons = append(reasons, locReason)

	salScore, salReason := ScoreSalary(j, c)
	reasons = append(reasons, salReason)

	reqScore, reqReason := ScoreRequirements(j, c)
	reasons = append(reasons, reqReason)

	advScore, advReason := ScoreAdvantages(j, c)
	if advScore > 0 {
		reasons = append(reasons, advReason)
	}

	langScore, langReason := ScoreLanguages(j, c)
	if langScore > 0 || len(j.RequiredLanguages) > 0 {
		reasons = append(reasons, langReason)
	}

	breakdown := Breakdown{
		LocationMatch:     locScore,
		SalaryMatch:       salScore,
		RequirementsMatch: reqScore,
		AdvantagesMatch:   advScore,
		LanguageMatch:     langScore,
	}

	// Core factors normalize to [0,1]; advantage and language bonuses stack
	// on top, so the total can nudge past 1.0 before the clamp.
	core := (locScore + salScore + reqScore) / 3.0
	total := clamp01(core + (advScore+langScore)*bonusWeight)

	var reject string
	switch {
	case salScore == 0.0:
		reject = "Salary mismatch"
	case reqScore == 0.0:
		reject = "Missing critical requirements"
	}

	return total, breakdown, reasons, reject
}

func (e *Evaluator) categoryRuleScore(j job.Job, c candidate.Candidate) (float64, Breakdown, []string, string) {
	weights := WeightsFor(j.Category)
	reasons := make([]string, 0, 7)

	locScore, locReason := ScoreLocation(j, c)
	reasons = append(reasons, locReason)

	salScore, salReason := ScoreSalary(j, c)
	reasons = append(reasons, salReason)

	reqScore, reqReason := ScoreRequirements(j, c)
	reasons = append(reasons, reqReason)

	langScore, langReason := ScoreLanguages(j, c)
	reasons = append(reasons, langReason)

	breakdown := Breakdown{
		LocationMatch:     locScore,
		SalaryMatch:       salScore,
		RequirementsMatch: reqScore,
		LanguageMatch:     langScore,
	}

	availScore, availReason := ScoreAvailability(j, c)
	if availScore == 0.0 {
		return 0.0, breakdown, reasons, availReason
	}
	reasons = append(reasons, availReason)

	certScore, certReason := ScoreCertifications(j, c)
	if certScore == 0.0 {
		return 0.0, breakdown, reasons, certReason
	}
	reasons = append(reasons, certReason)

	empScore, empReason := ScoreEmploymentType(j, c)
	reasons = append(reasons, empReason)

	total := clamp01(
		locScore*categoryLocationWeight +
			salScore*categorySalaryWeight +
			reqScore*weights.Skills +
			langScore*weights.Languages +
			availScore*weights.Availability +
			certScore*weights.Certifications +
			empScore*categoryEmploymentWeight,
	)

	var reject string
	switch {
	case salScore == 0.0:
		reject = "Salary mismatch"
	case reqScore == 0.0:
		reject = "Missing critical requirements"
	}

	return total, breakdown, reasons, reject
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
