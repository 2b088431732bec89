package matching

import (
	"context"
	"sort"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"

	"go.uber.org/zap"
)

type RankedJob struct {
	Job job.Job
	Result
}

type RankedCandidate struct {
	Candidate candidate.Candidate
	Result
}

// RankJobsForCandidate evaluates every job against the anchor candidate,
// drops results strictly below minScore (0-100) and returns the rest sorted
// by score descending. The sort is stable: ties keep input order.
func (e *Evaluator) RankJobsForCandidate(ctx context.Context, c candidate.Candidate, jobs []job.Job, minScore float64, mode Mode) []RankedJob {
	results := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		res := e.Evaluate(ctx, j, c, mode)
		if res.Score < minScore {
			continue
		}
		results = append(results, RankedJob{Job: j, Result: res})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	e.log.Info("ranked jobs for candidate",
		zap.String("candidate_id", c.ID.String()),
		zap.Int("evaluated", len(jobs)),
		zap.Int("kept", len(results)),
		zap.Float64("min_score", minScore),
	)
	return results
}

// RankCandidatesForJob is the mirror operation with a job anchor.
func (e *Evaluator) RankCandidatesForJob(ctx context.Context, j job.Job, candidates []candidate.Candidate, minScore float64, mode Mode) []RankedCandidate {
	results := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		res := e.Evaluate(ctx, j, c, mode)
		if res.Score < minScore {
			continue
		}
		results = append(results, RankedCandidate{Candidate: c, Result: res})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	e.log.Info("ranked candidates for job",
		zap.String("job_id", j.ID.String()),
		zap.Int("evaluated", len(candidates)),
		zap.Int("kept", len(results)),
		zap.Float64("min_score", minScore),
	)
	return results
}
