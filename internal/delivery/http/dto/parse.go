package dto

import (
	"jobmatcher/internal/embedding"
	"jobmatcher/internal/parser"
)

type ParseJobRequest struct {
	Text string `json:"text"`
}

type ParsedJobResponse struct {
	Title           string   `json:"title"`
	Location        string   `json:"location"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	ExperienceLevel string   `json:"experience_level"`
	JobType         string   `json:"job_type"`
	Skills          []string `json:"skills"`
	Languages       []string `json:"languages"`
	Description     string   `json:"description"`
}

func NewParsedJobResponse(p parser.ParsedJob) ParsedJobResponse {
	return ParsedJobResponse{
		Title:           p.Title,
		Location:        p.Location,
		SalaryMin:       p.SalaryMin,
		SalaryMax:       p.SalaryMax,
		ExperienceLevel: p.ExperienceLevel,
		JobType:         p.JobType,
		Skills:          emptyIfNil(p.Skills),
		Languages:       emptyIfNil(p.Languages),
		Description:     p.Description,
	}
}

type CacheStatsResponse struct {
	Size        int    `json:"size"`
	Capacity    int    `json:"capacity"`
	TTLSeconds  int    `json:"ttl_seconds"`
	Description string `json:"description"`
}

func NewCacheStatsResponse(s embedding.Stats) CacheStatsResponse {
	return CacheStatsResponse{
		Size:        s.Size,
		Capacity:    s.Capacity,
		TTLSeconds:  int(s.TTL.Seconds()),
		Description: "in-process embedding cache",
	}
}
