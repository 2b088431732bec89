package dto

import "jobmatcher/internal/usecase"

type RecommendationResponse struct {
	Job   JobResponse `json:"job"`
	Score float64     `json:"score"`
}

func NewRecommendationResponses(recs []usecase.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationResponse{Job: NewJobResponse(r.Job), Score: r.Score})
	}
	return out
}
