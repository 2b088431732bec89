package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"jobmatcher/internal/config"
	"jobmatcher/internal/delivery/http/handler"
	"jobmatcher/internal/delivery/http/middleware"
	"jobmatcher/internal/delivery/http/routes"
	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
	"jobmatcher/internal/domain/matching"
	"jobmatcher/internal/embedding"
	"jobmatcher/internal/repository"
	"jobmatcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type memJobRepo struct {
	jobs map[uuid.UUID]job.Job
}

func (m *memJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	m.jobs[j.ID] = j
	return j, nil
}
func (m *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}
func (m *memJobRepo) List(context.Context, int, int) ([]job.Job, error) {
	out := make([]job.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		out = append(out, j)
	}
	return out, nil
}
func (m *memJobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	if _, ok := m.jobs[j.ID]; !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	m.jobs[j.ID] = j
	return j, nil
}
func (m *memJobRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.jobs[id]; !ok {
		return false, nil
	}
	delete(m.jobs, id)
	return true, nil
}

type memCandidateRepo struct {
	candidates map[uuid.UUID]candidate.Candidate
}

func (m *memCandidateRepo) Create(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	m.candidates[c.ID] = c
	return c, nil
}
func (m *memCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, ok := m.candidates[id]
	if !ok {
		return candidate.Candidate{}, repository.ErrCandidateNotFound
	}
	return c, nil
}
func (m *memCandidateRepo) List(context.Context, int, int) ([]candidate.Candidate, error) {
	out := make([]candidate.Candidate, 0, len(m.candidates))
	for _, c := range m.candidates {
		out = append(out, c)
	}
	return out, nil
}
func (m *memCandidateRepo) Update(_ context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if _, ok := m.candidates[c.ID]; !ok {
		return candidate.Candidate{}, repository.ErrCandidateNotFound
	}
	m.candidates[c.ID] = c
	return c, nil
}
func (m *memCandidateRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.candidates[id]; !ok {
		return false, nil
	}
	delete(m.candidates, id)
	return true, nil
}

type fixedSemantic struct{ sim float64 }

func (s fixedSemantic) Similarity(context.Context, string, string) (float64, error) {
	return s.sim, nil
}

func f64(v float64) *float64 { return &v }

type seedData struct {
	candidateID uuid.UUID
	goodJobID   uuid.UUID
}

func newTestApp(t *testing.T) (*fiber.App, seedData) {
	t.Helper()

	candID := uuid.New()
	goodJobID := uuid.New()

	jobs := &memJobRepo{jobs: map[uuid.UUID]job.Job{
		goodJobID: {
			ID:           goodJobID,
			Title:        "Backend Engineer",
			Location:     "Berlin",
			SalaryMin:    f64(5000),
			SalaryMax:    f64(8000),
			Requirements: []string{"python"},
		},
		uuid.New(): {
			ID:           uuid.New(),
			Title:        "Underpaid Job",
			Location:     "Berlin",
			SalaryMin:    f64(1000),
			SalaryMax:    f64(2000),
			Requirements: []string{"python"},
		},
	}}
	candidates := &memCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{
		candID: {
			ID:                candID,
			Name:              "Ada",
			Location:          "Berlin",
			SalaryExpectation: 6000,
			Skills:            []string{"Python"},
		},
	}}

	cfg := config.MatchingConfig{
		CacheSize:         10,
		SemanticWeight:    0.6,
		RuleWeight:        0.4,
		DefaultMatchLimit: 50,
		MaxPerQuery:       1000,
	}

	evaluator := matching.NewEvaluator(fixedSemantic{sim: 0.7}, 0.6, 0.4, nil)
	source := embedding.NewSource(nil, embedding.NewCache(10, 0), nil)
	matchingUC := usecase.NewMatchingUsecase(jobs, candidates, evaluator, source, cfg, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	registry := &routes.Registry{
		Health:          handler.NewHealthHandler(nil, nil),
		Jobs:            handler.NewJobHandler(usecase.NewJobUsecase(jobs, nil, nil)),
		Candidates:      handler.NewCandidateHandler(usecase.NewCandidateUsecase(candidates, nil, nil)),
		Match:           handler.NewMatchHandler(matchingUC),
		Recommendations: handler.NewRecommendationHandler(usecase.NewRecommendationUsecase(jobs, candidates, nil)),
	}
	registry.Register(app)

	return app, seedData{candidateID: candID, goodJobID: goodJobID}
}

func TestIntegration_Health(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestIntegration_CandidateMatches(t *testing.T) {
	app, seed := newTestApp(t)

	url := fmt.Sprintf("/api/v1/candidates/%s/matches?min_score=40", seed.candidateID)
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var envelope semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	var data struct {
		Matches []struct {
			Job struct {
				ID uuid.UUID `json:"id"`
			} `json:"job"`
			Score   float64  `json:"score"`
			Reasons []string `json:"reasons"`
		} `json:"matches"`
		Summary struct {
			TotalEvaluated int `json:"total_evaluated"`
			MatchesFound   int `json:"matches_found"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	if data.Summary.TotalEvaluated != 2 {
		t.Fatalf("total evaluated = %d, want 2", data.Summary.TotalEvaluated)
	}
	if data.Summary.MatchesFound != 1 || len(data.Matches) != 1 {
		t.Fatalf("expected exactly one match above threshold, got %d", len(data.Matches))
	}
	if data.Matches[0].Job.ID != seed.goodJobID {
		t.Fatal("wrong job matched")
	}
	if data.Matches[0].Score < 40 || data.Matches[0].Score > 100 {
		t.Fatalf("score out of range: %v", data.Matches[0].Score)
	}
	if len(data.Matches[0].Reasons) == 0 {
		t.Fatal("expected reasons in match result")
	}
}

func TestIntegration_MatchUnknownCandidate(t *testing.T) {
	app, _ := newTestApp(t)

	url := fmt.Sprintf("/api/v1/candidates/%s/matches", uuid.New())
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestIntegration_TopMatch(t *testing.T) {
	app, seed := newTestApp(t)

	url := fmt.Sprintf("/api/v1/candidates/%s/matches/top", seed.candidateID)
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var envelope semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var data struct {
		TopMatch *struct {
			Job struct {
				ID uuid.UUID `json:"id"`
			} `json:"job"`
		} `json:"top_match"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.TopMatch == nil || data.TopMatch.Job.ID != seed.goodJobID {
		t.Fatal("expected the strong job as top match")
	}
}

func TestIntegration_FilteredMatches(t *testing.T) {
	app, seed := newTestApp(t)

	url := fmt.Sprintf("/api/v1/candidates/%s/matches/filter?min_score=0", seed.candidateID)
	body := strings.NewReader(`{"min_salary": 5000}`)
	req := httptest.NewRequest("POST", url, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var envelope semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var data struct {
		Matches []struct {
			Job struct {
				ID uuid.UUID `json:"id"`
			} `json:"job"`
		} `json:"matches"`
		Summary struct {
			TotalJobs    int `json:"total_jobs"`
			AfterFilters int `json:"after_filters"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Summary.TotalJobs != 2 || data.Summary.AfterFilters != 1 {
		t.Fatalf("unexpected filter funnel: %+v", data.Summary)
	}
	if len(data.Matches) != 1 || data.Matches[0].Job.ID != seed.goodJobID {
		t.Fatal("expected only the well-paid job after filtering")
	}
}

func TestIntegration_JobMatches(t *testing.T) {
	app, seed := newTestApp(t)

	url := fmt.Sprintf("/api/v1/jobs/%s/matches", seed.goodJobID)
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestIntegration_Recommendations(t *testing.T) {
	app, seed := newTestApp(t)

	url := fmt.Sprintf("/api/v1/candidates/%s/recommendations", seed.candidateID)
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestIntegration_CacheStats(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/matching/cache/stats", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/matching/cache", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestIntegration_InvalidMatchParams(t *testing.T) {
	app, seed := newTestApp(t)

	url := fmt.Sprintf("/api/v1/candidates/%s/matches?min_score=150", seed.candidateID)
	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
