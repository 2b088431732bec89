package matching

import (
	"context"
	"testing"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
)

func rankerFixtures() (candidate.Candidate, []job.Job) {
	c := candidate.Candidate{
		ID:                uuid.New(),
		Location:          "Berlin",
		SalaryExpectation: 6000,
		Skills:            []string{"Python", "SQL"},
	}

	good := job.Job{
		ID:           uuid.New(),
		Title:        "Backend Engineer",
		Location:     "Berlin",
		SalaryMin:    f64(5000),
		SalaryMax:    f64(8000),
		Requirements: []string{"python", "sql"},
	}
	mediocre := job.Job{
		ID:           uuid.New(),
		Title:        "Data Analyst",
		Location:     "Munich",
		SalaryMin:    f64(5000),
		SalaryMax:    f64(8000),
		Requirements: []string{"python", "tableau"},
	}
	rejected := job.Job{
		ID:           uuid.New(),
		Title:        "Senior Architect",
		Location:     "Berlin",
		SalaryMin:    f64(2000),
		SalaryMax:    f64(3000),
		Requirements: []string{"python"},
	}
	return c, []job.Job{rejected, mediocre, good}
}

func TestRankJobsForCandidate_Ordering(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.5}, 0, 0, nil)
	c, jobs := rankerFixtures()

	ranked := e.RankJobsForCandidate(context.Background(), c, jobs, 0.0, ModeDefault)

	if len(ranked) != 3 {
		t.Fatalf("expected 3 results with min score 0, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("results not sorted descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
	if ranked[0].Job.Title != "Backend Engineer" {
		t.Fatalf("expected best job first, got %q", ranked[0].Job.Title)
	}
	// The salary-rejected job carries a zero score and sorts last.
	if ranked[2].Score != 0.0 {
		t.Fatalf("expected rejected job last with zero score, got %v", ranked[2].Score)
	}
}

func TestRankJobsForCandidate_MinScoreFilters(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.5}, 0, 0, nil)
	c, jobs := rankerFixtures()

	ranked := e.RankJobsForCandidate(context.Background(), c, jobs, 40.0, ModeDefault)

	for _, r := range ranked {
		if r.Score < 40.0 {
			t.Fatalf("result below min score leaked through: %v", r.Score)
		}
	}
	if len(ranked) == 0 {
		t.Fatal("expected at least one result above min score")
	}
}

func TestRankJobsForCandidate_Deterministic(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.5}, 0, 0, nil)
	c, jobs := rankerFixtures()

	first := e.RankJobsForCandidate(context.Background(), c, jobs, 0.0, ModeDefault)
	second := e.RankJobsForCandidate(context.Background(), c, jobs, 0.0, ModeDefault)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Job.ID != second[i].Job.ID || first[i].Score != second[i].Score {
			t.Fatalf("run not deterministic at index %d", i)
		}
	}
}

func TestRankJobsForCandidate_TiesKeepInputOrder(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.5}, 0, 0, nil)
	c := candidate.Candidate{
		ID:                uuid.New(),
		Location:          "Berlin",
		SalaryExpectation: 6000,
		Skills:            []string{"Python"},
	}

	// Identical jobs except for identity, so every score ties.
	twins := make([]job.Job, 4)
	for i := range twins {
		twins[i] = job.Job{
			ID:           uuid.New(),
			Title:        "Backend Engineer",
			Location:     "Berlin",
			SalaryMin:    f64(5000),
			SalaryMax:    f64(8000),
			Requirements: []string{"python"},
		}
	}

	ranked := e.RankJobsForCandidate(context.Background(), c, twins, 0.0, ModeDefault)

	if len(ranked) != len(twins) {
		t.Fatalf("expected %d results, got %d", len(twins), len(ranked))
	}
	for i := range ranked {
		if ranked[i].Score != ranked[0].Score {
			t.Fatalf("fixture scores must tie, got %v and %v", ranked[0].Score, ranked[i].Score)
		}
		if ranked[i].Job.ID != twins[i].ID {
			t.Fatalf("tie broke input order at index %d", i)
		}
	}
}

func TestRankCandidatesForJob(t *testing.T) {
	e := NewEvaluator(stubSemantic{sim: 0.5}, 0, 0, nil)

	j := job.Job{
		ID:           uuid.New(),
		Title:        "Backend Engineer",
		Location:     "Berlin",
		SalaryMin:    f64(5000),
		SalaryMax:    f64(8000),
		Requirements: []string{"python"},
	}
	strong := candidate.Candidate{ID: uuid.New(), Location: "Berlin", SalaryExpectation: 6000, Skills: []string{"Python"}}
	weak := candidate.Candidate{ID: uuid.New(), Location: "Munich", SalaryExpectation: 6000, Skills: []string{"Python"}}

	ranked := e.RankCandidatesForJob(context.Background(), j, []candidate.Candidate{weak, strong}, 0.0, ModeDefault)

	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Candidate.ID != strong.ID {
		t.Fatal("expected strong candidate ranked first")
	}
}
