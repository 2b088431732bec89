package matching

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
)

type stubSemantic struct {
	sim float64
	err error
}

func (s stubSemantic) Similarity(context.Context, string, string) (float64, error) {
	return s.sim, s.err
}

type panicSemantic struct{}

func (panicSemantic) Similarity(context.Context, string, string) (float64, error) {
	panic("embedding backend exploded")
}

func perfectPair() (job.Job, candidate.Candidate) {
	j := job.Job{
		Title:        "Backend Engineer",
		Location:     "Berlin",
		SalaryMin:    f64(5000),
		SalaryMax:    f64(8000),
		Requirements: []string{"python"},
	}
	c := candidate.Candidate{
		Location:          "Berlin",
		SalaryExpectation: 6000,
		Skills:            []string{"Python"},
	}
	return j, c
}

func TestEvaluate_BlendsSemanticAndRules(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.8}, 0, 0, nil)
	j, c := perfectPair()

	res := e.Evaluate(context.Background(), j, c, ModeDefault)

	// Rule score is 1.0 (all three core factors perfect), semantic 0.8.
	want := (0.6*0.8 + 0.4*1.0) * 100
	if math.Abs(res.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
	if res.SemanticScore != 80.0 {
		t.Fatalf("semantic score = %v, want 80.0", res.SemanticScore)
	}
	if res.RuleScore != 100.0 {
		t.Fatalf("rule score = %v, want 100.0", res.RuleScore)
	}
	if res.Breakdown.SemanticSimilarity != 0.8 {
		t.Fatalf("breakdown semantic = %v", res.Breakdown.SemanticSimilarity)
	}
}

func TestEvaluate_SalaryHardReject(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.9}, 0, 0, nil)
	j, c := perfectPair()
	c.SalaryExpectation = 9000

	res := e.Evaluate(context.Background(), j, c, ModeDefault)

	if res.Score != 0.0 {
		t.Fatalf("expected zero score on salary reject, got %v", res.Score)
	}
	if !hasReasonPrefix(res.Reasons, "REJECTED: Salary mismatch") {
		t.Fatalf("missing reject reason, got %v", res.Reasons)
	}
	// Components stay reported for diagnostics.
	if res.SemanticScore != 90.0 {
		t.Fatalf("semantic score = %v, want 90.0", res.SemanticScore)
	}
	if res.Breakdown.SalaryMatch != 0.0 {
		t.Fatalf("breakdown salary = %v, want 0.0", res.Breakdown.SalaryMatch)
	}
}

func TestEvaluate_RequirementsHardReject(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.9}, 0, 0, nil)
	j, c := perfectPair()
	c.Skills = []string{"Excel"}
	c.Experience = nil

	res := e.Evaluate(context.Background(), j, c, ModeDefault)

	if res.Score != 0.0 {
		t.Fatalf("expected zero score on requirements reject, got %v", res.Score)
	}
	if !hasReasonPrefix(res.Reasons, "REJECTED: Missing critical requirements") {
		t.Fatalf("missing reject reason, got %v", res.Reasons)
	}
}

func TestEvaluate_CategoryShiftReject(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.9}, 0, 0, nil)
	j, c := perfectPair()
	j.Category = job.CategoryHospitality
	j.ShiftWork = true
	c.WillingToWorkShifts = false

	res := e.Evaluate(context.Background(), j, c, ModeCategory)

	if res.Score != 0.0 {
		t.Fatalf("expected zero score on availability reject, got %v", res.Score)
	}
	if !hasReasonPrefix(res.Reasons, "REJECTED: Not willing to work shifts (required)") {
		t.Fatalf("missing reject reason, got %v", res.Reasons)
	}
}

func TestEvaluate_CategoryCertificationsContributeWithoutExplicitWeight(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.5}, 0, 0, nil)
	j, c := perfectPair()
	j.Category = job.CategoryTechnology

	res := e.Evaluate(context.Background(), j, c, ModeCategory)

	// loc 0.15 + sal 0.15 + skills 0.40 + avail 0.05 + certs 0.10 + emp 0.05,
	// languages contribute nothing when the job requires none.
	if res.RuleScore != 90.0 {
		t.Fatalf("rule score = %v, want 90.0", res.RuleScore)
	}
	want := (0.6*0.5 + 0.4*0.9) * 100
	if math.Abs(res.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
}

func TestEvaluate_SemanticErrorDegradesToZero(t *testing.T) {
	e := NewEvaluator(stubSemantic{err: errors.New("backend down")}, 0, 0, nil)
	j, c := perfectPair()

	res := e.Evaluate(context.Background(), j, c, ModeDefault)

	if res.SemanticScore != 0.0 {
		t.Fatalf("semantic score = %v, want 0.0", res.SemanticScore)
	}
	want := 0.4 * 100
	if math.Abs(res.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", res.Score, want)
	}
}

func TestEvaluate_PanicProducesZeroResult(t *testing.T) {
	e := NewEvaluator(panicSemantic{}, 0, 0, nil)
	j, c := perfectPair()

	res := e.Evaluate(context.Background(), j, c, ModeDefault)

	if res.Score != 0.0 {
		t.Fatalf("expected zero score after panic, got %v", res.Score)
	}
	if len(res.Reasons) != 1 || !strings.HasPrefix(res.Reasons[0], "Error during matching:") {
		t.Fatalf("unexpected reasons: %v", res.Reasons)
	}
}

func TestEvaluate_ScoreBounds(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 1.0}, 0, 0, nil)
	j, c := perfectPair()
	j.Advantages = []string{"python", "sql", "docker", "aws", "go", "react"}
	j.RequiredLanguages = []string{"english"}
	c.Skills = append(c.Skills, "SQL", "Docker", "AWS", "Go", "React")
	c.Languages = []string{"English"}

	res := e.Evaluate(context.Background(), j, c, ModeDefault)
	if res.Score < 0 || res.Score > 100 {
		t.Fatalf("score out of bounds: %v", res.Score)
	}
	if res.Score != 100.0 {
		t.Fatalf("expected clamp at 100, got %v", res.Score)
	}
}

func hasReasonPrefix(reasons []string, prefix string) bool {
	for _, r := range reasons {
		if strings.HasPrefix(r, prefix) {
			return true
		}
	}
	return false
}
