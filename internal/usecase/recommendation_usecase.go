package usecase

import (
	"context"
	"sort"
	"strings"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
	"jobmatcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const recommendationFetchLimit = 500

// Recommendation is a job suggested to a candidate by the additive scorer.
type Recommendation struct {
	Job   job.Job `json:"job"`
	Score float64 `json:"score"`
}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]Recommendation, error)
}

// Recommendations implements the additive point-based recommender. Unlike the
// matching evaluator it never calls the embedding service, so it stays useful
// when no semantic backend is configured.
type Recommendations struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	log        *zap.Logger
}

func NewRecommendationUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, log *zap.Logger) *Recommendations {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recommendations{jobs: jobs, candidates: candidates, log: log}
}

func (u *Recommendations) RecommendJobs(ctx context.Context, candidateID uuid.UUID, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}

	c, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if err == repository.ErrCandidateNotFound {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.List(ctx, recommendationFetchLimit, 0)
	if err != nil {
		return nil, ErrInternal
	}

	recs := make([]Recommendation, 0, len(jobs))
	for _, j := range jobs {
		score, ok := recommendationScore(j, c)
		if !ok {
			continue
		}
		recs = append(recs, Recommendation{Job: j, Score: score})
	}

	sort.SliceStable(recs, func(i, k int) bool { return recs[i].Score > recs[k].Score })
	if len(recs) > limit {
		recs = recs[:limit]
	}

	u.log.Info("recommendations computed",
		zap.String("candidate_id", candidateID.String()),
		zap.Int("evaluated", len(jobs)),
		zap.Int("returned", len(recs)))
	return recs, nil
}

// recommendationScore awards points per dimension and skips jobs that fail a
// hard constraint. Returns ok=false when the job should be excluded entirely.
func recommendationScore(j job.Job, c candidate.Candidate) (float64, bool) {
	var rulePoints, semanticPoints float64

	// Location. Equal strings score as exact, including both empty.
	jobLoc := strings.ToLower(strings.TrimSpace(j.Location))
	candLoc := strings.ToLower(strings.TrimSpace(c.Location))
	if jobLoc == candLoc {
		rulePoints += 25
	} else {
		rulePoints += 10
	}

	// Salary: a stated maximum below the candidate's expectation excludes the job.
	if j.SalaryMax != nil {
		if c.SalaryExpectation > *j.SalaryMax {
			return 0, false
		}
		rulePoints += 25
	}

	// Required languages.
	if len(j.RequiredLanguages) > 0 {
		matched := 0
		spoken := make(map[string]bool, len(c.Languages))
		for _, l := range c.Languages {
			spoken[strings.ToLower(strings.TrimSpace(l))] = true
		}
		for _, l := range j.RequiredLanguages {
			if spoken[strings.ToLower(strings.TrimSpace(l))] {
				matched++
			}
		}
		switch {
		case matched == 0:
			return 0, false
		case matched == len(j.RequiredLanguages):
			rulePoints += 20
		default:
			rulePoints += 10
		}
	}

	// Mandatory requirements are checked against experience text only; the
	// 20 points land whether or not the job lists any.
	experience := strings.ToLower(strings.Join(c.Experience, " "))
	for _, req := range j.Requirements {
		req = strings.ToLower(strings.TrimSpace(req))
		if req != "" && !strings.Contains(experience, req) {
			return 0, false
		}
	}
	rulePoints += 20

	// Soft signals: advantages count only when the experience text mentions
	// them.
	matched := 0
	for _, adv := range j.Advantages {
		adv = strings.ToLower(strings.TrimSpace(adv))
		if adv != "" && strings.Contains(experience, adv) {
			matched++
		}
	}
	bonus := float64(matched) * 5
	if bonus > 20 {
		bonus = 20
	}
	semanticPoints += bonus

	depth := float64(len(c.Experience)) * 2
	if depth > 20 {
		depth = 20
	}
	semanticPoints += depth

	total := rulePoints + semanticPoints
	if total > 100 {
		total = 100
	}
	return total, true
}
