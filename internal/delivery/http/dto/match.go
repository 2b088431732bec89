package dto

import (
	"jobmatcher/internal/domain/matching"
	"jobmatcher/internal/usecase"
)

// BreakdownResponse keys mirror the scorer dimensions; core factors and
// semantic similarity are fractions in [0,1], advantages and languages are
// bonus fractions.
type BreakdownResponse struct {
	Location           float64 `json:"location"`
	Salary             float64 `json:"salary"`
	Requirements       float64 `json:"requirements"`
	Advantages         float64 `json:"advantages"`
	Languages          float64 `json:"languages"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
}

type MatchResultResponse struct {
	Score         float64           `json:"score"`
	SemanticScore float64           `json:"semantic_score"`
	RuleScore     float64           `json:"rule_score"`
	Breakdown     BreakdownResponse `json:"breakdown"`
	Reasons       []string          `json:"reasons"`
}

type MatchedJobResponse struct {
	Job JobResponse `json:"job"`
	MatchResultResponse
}

type MatchedCandidateResponse struct {
	Candidate CandidateResponse `json:"candidate"`
	MatchResultResponse
}

type MatchSummaryResponse struct {
	TotalEvaluated int      `json:"total_evaluated"`
	MatchesFound   int      `json:"matches_found"`
	TopScore       *float64 `json:"top_score,omitempty"`
}

type CandidateMatchesResponse struct {
	Matches []MatchedJobResponse `json:"matches"`
	Summary MatchSummaryResponse `json:"summary"`
}

type JobMatchesResponse struct {
	Matches []MatchedCandidateResponse `json:"matches"`
	Summary MatchSummaryResponse       `json:"summary"`
}

type TopMatchResponse struct {
	TopMatch *MatchedJobResponse `json:"top_match"`
}

// MatchFiltersRequest narrows the job set for filtered matching. All fields
// are optional.
type MatchFiltersRequest struct {
	Location       string   `json:"location"`
	MinSalary      *float64 `json:"min_salary"`
	MaxSalary      *float64 `json:"max_salary"`
	RequiredSkills []string `json:"required_skills"`
}

func (r MatchFiltersRequest) ToFilters() usecase.JobFilters {
	return usecase.JobFilters{
		Location:       r.Location,
		MinSalary:      r.MinSalary,
		MaxSalary:      r.MaxSalary,
		RequiredSkills: r.RequiredSkills,
	}
}

type FilteredMatchSummaryResponse struct {
	TotalJobs    int `json:"total_jobs"`
	AfterFilters int `json:"after_filters"`
	MatchesFound int `json:"matches_found"`
}

type FilteredMatchesResponse struct {
	Matches []MatchedJobResponse         `json:"matches"`
	Summary FilteredMatchSummaryResponse `json:"summary"`
}

func NewTopMatchResponse(top *matching.RankedJob) TopMatchResponse {
	if top == nil {
		return TopMatchResponse{}
	}
	return TopMatchResponse{TopMatch: &MatchedJobResponse{
		Job:                 NewJobResponse(top.Job),
		MatchResultResponse: newMatchResultResponse(top.Result),
	}}
}

func NewFilteredMatchesResponse(ranked []matching.RankedJob, summary usecase.FilteredMatchSummary) FilteredMatchesResponse {
	matches := make([]MatchedJobResponse, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, MatchedJobResponse{
			Job:                 NewJobResponse(r.Job),
			MatchResultResponse: newMatchResultResponse(r.Result),
		})
	}
	return FilteredMatchesResponse{
		Matches: matches,
		Summary: FilteredMatchSummaryResponse(summary),
	}
}

func newMatchResultResponse(r matching.Result) MatchResultResponse {
	reasons := r.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return MatchResultResponse{
		Score:         r.Score,
		SemanticScore: r.SemanticScore,
		RuleScore:     r.RuleScore,
		Breakdown: BreakdownResponse{
			Location:           r.Breakdown.LocationMatch,
			Salary:             r.Breakdown.SalaryMatch,
			Requirements:       r.Breakdown.RequirementsMatch,
			Advantages:         r.Breakdown.AdvantagesMatch,
			Languages:          r.Breakdown.LanguageMatch,
			SemanticSimilarity: r.Breakdown.SemanticSimilarity,
		},
		Reasons: reasons,
	}
}

func newMatchSummaryResponse(s usecase.MatchSummary) MatchSummaryResponse {
	return MatchSummaryResponse{
		TotalEvaluated: s.TotalEvaluated,
		MatchesFound:   s.MatchesFound,
		TopScore:       s.TopScore,
	}
}

func NewCandidateMatchesResponse(ranked []matching.RankedJob, summary usecase.MatchSummary) CandidateMatchesResponse {
	matches := make([]MatchedJobResponse, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, MatchedJobResponse{
			Job:                 NewJobResponse(r.Job),
			MatchResultResponse: newMatchResultResponse(r.Result),
		})
	}
	return CandidateMatchesResponse{Matches: matches, Summary: newMatchSummaryResponse(summary)}
}

func NewJobMatchesResponse(ranked []matching.RankedCandidate, summary usecase.MatchSummary) JobMatchesResponse {
	matches := make([]MatchedCandidateResponse, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, MatchedCandidateResponse{
			Candidate:           NewCandidateResponse(r.Candidate),
			MatchResultResponse: newMatchResultResponse(r.Result),
		})
	}
	return JobMatchesResponse{Matches: matches, Summary: newMatchSummaryResponse(summary)}
}
