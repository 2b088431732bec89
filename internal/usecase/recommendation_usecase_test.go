package usecase

import (
	"context"
	"errors"
	"testing"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
)

func TestRecommendJobs_CandidateNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(mockJobRepo{}, mockCandidateRepo{}, nil)

	_, err := uc.RecommendJobs(context.Background(), uuid.New(), 10)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestRecommendJobs_ScoresAndSorts(t *testing.T) {
	candID := uuid.New()
	cand := candidate.Candidate{
		ID:                candID,
		Name:              "Ada",
		Location:          "Berlin",
		SalaryExpectation: 3000,
		Languages:         []string{"English", "German"},
		Experience:        []string{"Waitress at a busy restaurant", "Cashier work"},
	}

	local := job.Job{
		ID:                uuid.New(),
		Title:             "Restaurant Server",
		Location:          "Berlin",
		SalaryMax:         f64(3500),
		RequiredLanguages: []string{"German"},
		Requirements:      []string{"restaurant"},
	}
	remote := job.Job{
		ID:                uuid.New(),
		Title:             "Hotel Server",
		Location:          "Hamburg",
		SalaryMax:         f64(3500),
		RequiredLanguages: []string{"German"},
		Requirements:      []string{"restaurant"},
	}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{remote, local}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Job.ID != local.ID {
		t.Fatal("expected local job ranked first")
	}
	if recs[0].Score <= recs[1].Score {
		t.Fatalf("expected strictly higher score for local job: %v <= %v", recs[0].Score, recs[1].Score)
	}
}

func TestRecommendJobs_SkipsHardConstraints(t *testing.T) {
	candID := uuid.New()
	cand := candidate.Candidate{
		ID:                candID,
		Name:              "Ada",
		Location:          "Berlin",
		SalaryExpectation: 5000,
		Languages:         []string{"English"},
	}

	tooCheap := job.Job{ID: uuid.New(), Title: "Underpaid", Location: "Berlin", SalaryMax: f64(4000)}
	wrongLanguage := job.Job{ID: uuid.New(), Title: "French Only", Location: "Berlin", RequiredLanguages: []string{"French"}}
	missingSkill := job.Job{ID: uuid.New(), Title: "Crane Operator", Location: "Berlin", Requirements: []string{"crane license"}}
	fine := job.Job{ID: uuid.New(), Title: "Receptionist", Location: "Berlin"}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{tooCheap, wrongLanguage, missingSkill, fine}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 1 || recs[0].Job.ID != fine.ID {
		t.Fatalf("expected only the viable job, got %v", recs)
	}
}

func TestRecommendJobs_ScoreCappedAt100(t *testing.T) {
	candID := uuid.New()
	experience := make([]string, 20)
	for i := range experience {
		experience[i] = "restaurant work"
	}
	cand := candidate.Candidate{
		ID:                candID,
		Name:              "Ada",
		Location:          "Berlin",
		SalaryExpectation: 2000,
		Languages:         []string{"German"},
		Experience:        experience,
	}

	j := job.Job{
		ID:                uuid.New(),
		Title:             "Server",
		Location:          "Berlin",
		SalaryMax:         f64(3000),
		RequiredLanguages: []string{"German"},
		Requirements:      []string{"restaurant"},
		Advantages:        []string{"restaurant", "work"},
	}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{j}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Score > 100 {
		t.Fatalf("score exceeds cap: %v", recs[0].Score)
	}
	if recs[0].Score != 100 {
		t.Fatalf("expected saturated score of 100, got %v", recs[0].Score)
	}
}

func TestRecommendJobs_RequirementsPointsWithoutRequirements(t *testing.T) {
	candID := uuid.New()
	cand := candidate.Candidate{ID: candID, Name: "Ada", Location: "Berlin"}

	j := job.Job{ID: uuid.New(), Title: "Receptionist", Location: "Berlin"}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{j}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Location 25 plus the unconditional requirements 20.
	if len(recs) != 1 || recs[0].Score != 45 {
		t.Fatalf("expected score 45 for a requirement-free job, got %v", recs)
	}
}

func TestRecommendJobs_AdvantagesMatchExperienceOnly(t *testing.T) {
	candID := uuid.New()
	cand := candidate.Candidate{
		ID:       candID,
		Name:     "Ada",
		Location: "Berlin",
		Skills:   []string{"python"},
	}

	j := job.Job{ID: uuid.New(), Title: "Developer", Location: "Berlin", Advantages: []string{"python"}}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{j}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// A skill listed outside the experience entries earns no advantage bonus.
	if len(recs) != 1 || recs[0].Score != 45 {
		t.Fatalf("expected score 45 with no advantage bonus, got %v", recs)
	}

	cand.Experience = []string{"python development"}
	uc = NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{j}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)
	recs, err = uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// 25 location + 20 requirements + 5 advantage + 2 depth.
	if len(recs) != 1 || recs[0].Score != 52 {
		t.Fatalf("expected score 52 with the experience mention, got %v", recs)
	}
}

func TestRecommendJobs_EmptyLocationsScoreAsExact(t *testing.T) {
	candID := uuid.New()
	cand := candidate.Candidate{ID: candID, Name: "Ada"}

	blank := job.Job{ID: uuid.New(), Title: "Anywhere"}
	elsewhere := job.Job{ID: uuid.New(), Title: "Somewhere", Location: "Berlin"}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: []job.Job{elsewhere, blank}},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Job.ID != blank.ID || recs[0].Score != 45 {
		t.Fatalf("expected the location-less job first at 45, got %v", recs)
	}
	if recs[1].Score != 30 {
		t.Fatalf("expected 30 for the mismatched location, got %v", recs[1].Score)
	}
}

func TestRecommendJobs_TruncatesToLimit(t *testing.T) {
	candID := uuid.New()
	cand := candidate.Candidate{ID: candID, Name: "Ada", Location: "Berlin"}

	jobs := make([]job.Job, 5)
	for i := range jobs {
		jobs[i] = job.Job{ID: uuid.New(), Title: "Job", Location: "Berlin"}
	}

	uc := NewRecommendationUsecase(
		mockJobRepo{listed: jobs},
		mockCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{candID: cand}},
		nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), candID, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
}
