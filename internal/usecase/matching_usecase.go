package usecase

import (
	"context"
	"strings"

	"jobmatcher/internal/config"
	"jobmatcher/internal/domain/job"
	"jobmatcher/internal/domain/matching"
	"jobmatcher/internal/embedding"
	"jobmatcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchParams narrows one ranking request. Unset values select configured
// defaults; MinScore is a pointer so an explicit 0 stays distinct from
// "not provided".
type MatchParams struct {
	MinScore *float64
	Limit    int
	Mode     matching.Mode
}

// MatchSummary reports how a ranking call went, for observability.
type MatchSummary struct {
	TotalEvaluated int      `json:"total_evaluated"`
	MatchesFound   int      `json:"matches_found"`
	TopScore       *float64 `json:"top_score,omitempty"`
}

// JobFilters narrow the job set before ranking. Nil or empty fields are
// skipped.
type JobFilters struct {
	Location       string
	MinSalary      *float64
	MaxSalary      *float64
	RequiredSkills []string
}

// FilteredMatchSummary reports the funnel of a filtered ranking call.
type FilteredMatchSummary struct {
	TotalJobs    int `json:"total_jobs"`
	AfterFilters int `json:"after_filters"`
	MatchesFound int `json:"matches_found"`
}

type MatchingUsecase interface {
	MatchJobsForCandidate(ctx context.Context, candidateID uuid.UUID, p MatchParams) ([]matching.RankedJob, MatchSummary, error)
	MatchCandidatesForJob(ctx context.Context, jobID uuid.UUID, p MatchParams) ([]matching.RankedCandidate, MatchSummary, error)
	TopMatchForCandidate(ctx context.Context, candidateID uuid.UUID) (*matching.RankedJob, error)
	MatchJobsWithFilters(ctx context.Context, candidateID uuid.UUID, f JobFilters, p MatchParams) ([]matching.RankedJob, FilteredMatchSummary, error)
	CacheStats() embedding.Stats
	ClearCache()
}

type Matching struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	evaluator  *matching.Evaluator
	source     *embedding.Source
	cfg        config.MatchingConfig
	log        *zap.Logger
}

func NewMatchingUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	evaluator *matching.Evaluator,
	source *embedding.Source,
	cfg config.MatchingConfig,
	log *zap.Logger,
) *Matching {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matching{
		jobs:       jobs,
		candidates: candidates,
		evaluator:  evaluator,
		source:     source,
		cfg:        cfg,
		log:        log,
	}
}

func (u *Matching) MatchJobsForCandidate(ctx context.Context, candidateID uuid.UUID, p MatchParams) ([]matching.RankedJob, MatchSummary, error) {
	p, err := u.normalizeParams(p)
	if err != nil {
		return nil, MatchSummary{}, err
	}
	if candidateID == uuid.Nil {
		return nil, MatchSummary{}, ErrCandidateNotFound
	}

	anchor, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if err == repository.ErrCandidateNotFound {
			return nil, MatchSummary{}, ErrCandidateNotFound
		}
		return nil, MatchSummary{}, ErrInternal
	}

	jobs, err := u.jobs.List(ctx, u.cfg.MaxPerQuery, 0)
	if err != nil {
		return nil, MatchSummary{}, ErrInternal
	}

	ranked := u.evaluator.RankJobsForCandidate(ctx, anchor, jobs, *p.MinScore, p.Mode)
	if len(ranked) > p.Limit {
		ranked = ranked[:p.Limit]
	}

	summary := MatchSummary{TotalEvaluated: len(jobs), MatchesFound: len(ranked)}
	if len(ranked) > 0 {
		summary.TopScore = &ranked[0].Score
	}
	return ranked, summary, nil
}

func (u *Matching) MatchCandidatesForJob(ctx context.Context, jobID uuid.UUID, p MatchParams) ([]matching.RankedCandidate, MatchSummary, error) {
	p, err := u.normalizeParams(p)
	if err != nil {
		return nil, MatchSummary{}, err
	}
	if jobID == uuid.Nil {
		return nil, MatchSummary{}, ErrJobNotFound
	}

	anchor, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == repository.ErrJobNotFound {
			return nil, MatchSummary{}, ErrJobNotFound
		}
		return nil, MatchSummary{}, ErrInternal
	}

	candidates, err := u.candidates.List(ctx, u.cfg.MaxPerQuery, 0)
	if err != nil {
		return nil, MatchSummary{}, ErrInternal
	}

	ranked := u.evaluator.RankCandidatesForJob(ctx, anchor, candidates, *p.MinScore, p.Mode)
	if len(ranked) > p.Limit {
		ranked = ranked[:p.Limit]
	}

	summary := MatchSummary{TotalEvaluated: len(candidates), MatchesFound: len(ranked)}
	if len(ranked) > 0 {
		summary.TopScore = &ranked[0].Score
	}
	return ranked, summary, nil
}

// TopMatchForCandidate returns the single best job above the configured
// threshold, or nil when nothing qualifies.
func (u *Matching) TopMatchForCandidate(ctx context.Context, candidateID uuid.UUID) (*matching.RankedJob, error) {
	if candidateID == uuid.Nil {
		return nil, ErrCandidateNotFound
	}

	anchor, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if err == repository.ErrCandidateNotFound {
			return nil, ErrCandidateNotFound
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.List(ctx, u.cfg.MaxPerQuery, 0)
	if err != nil {
		return nil, ErrInternal
	}

	ranked := u.evaluator.RankJobsForCandidate(ctx, anchor, jobs, u.cfg.MinMatchScore, matching.ModeDefault)
	if len(ranked) == 0 {
		return nil, nil
	}
	return &ranked[0], nil
}

// MatchJobsWithFilters narrows the job set by location, salary overlap and
// required skills before ranking the remainder.
func (u *Matching) MatchJobsWithFilters(ctx context.Context, candidateID uuid.UUID, f JobFilters, p MatchParams) ([]matching.RankedJob, FilteredMatchSummary, error) {
	p, err := u.normalizeParams(p)
	if err != nil {
		return nil, FilteredMatchSummary{}, err
	}
	if candidateID == uuid.Nil {
		return nil, FilteredMatchSummary{}, ErrCandidateNotFound
	}

	anchor, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if err == repository.ErrCandidateNotFound {
			return nil, FilteredMatchSummary{}, ErrCandidateNotFound
		}
		return nil, FilteredMatchSummary{}, ErrInternal
	}

	all, err := u.jobs.List(ctx, u.cfg.MaxPerQuery, 0)
	if err != nil {
		return nil, FilteredMatchSummary{}, ErrInternal
	}

	filtered := filterJobs(all, f)
	summary := FilteredMatchSummary{TotalJobs: len(all), AfterFilters: len(filtered)}
	if len(filtered) == 0 {
		return []matching.RankedJob{}, summary, nil
	}

	ranked := u.evaluator.RankJobsForCandidate(ctx, anchor, filtered, *p.MinScore, p.Mode)
	if len(ranked) > p.Limit {
		ranked = ranked[:p.Limit]
	}
	summary.MatchesFound = len(ranked)
	return ranked, summary, nil
}

func filterJobs(jobs []job.Job, f JobFilters) []job.Job {
	kept := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
			continue
		}
		if f.MinSalary != nil && (j.SalaryMax == nil || *j.SalaryMax < *f.MinSalary) {
			continue
		}
		if f.MaxSalary != nil && (j.SalaryMin == nil || *j.SalaryMin > *f.MaxSalary) {
			continue
		}
		if len(f.RequiredSkills) > 0 && !jobOffersSkills(j, f.RequiredSkills) {
			continue
		}
		kept = append(kept, j)
	}
	return kept
}

// jobOffersSkills reports whether requirements plus advantages cover every
// wanted skill.
func jobOffersSkills(j job.Job, wanted []string) bool {
	offered := make(map[string]struct{}, len(j.Requirements)+len(j.Advantages))
	for _, s := range j.Requirements {
		offered[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range j.Advantages {
		offered[strings.ToLower(s)] = struct{}{}
	}
	for _, s := range wanted {
		if _, ok := offered[strings.ToLower(s)]; !ok {
			return false
		}
	}
	return true
}

func (u *Matching) CacheStats() embedding.Stats {
	return u.source.CacheStats()
}

func (u *Matching) ClearCache() {
	u.source.ClearCache()
}

func (u *Matching) normalizeParams(p MatchParams) (MatchParams, error) {
	if p.MinScore == nil {
		threshold := u.cfg.MinMatchScore
		p.MinScore = &threshold
	}
	if *p.MinScore < 0 || *p.MinScore > 100 {
		return p, ErrInvalidInput
	}
	if p.Limit <= 0 {
		p.Limit = u.cfg.DefaultMatchLimit
	}
	if p.Limit > u.cfg.MaxPerQuery {
		p.Limit = u.cfg.MaxPerQuery
	}
	switch p.Mode {
	case "":
		p.Mode = matching.ModeDefault
	case matching.ModeDefault, matching.ModeCategory:
	default:
		return p, ErrInvalidInput
	}
	return p, nil
}
