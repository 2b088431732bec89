package dto

import (
	"time"

	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
)

type JobRequest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`

	Category        string `json:"category"`
	EmploymentType  string `json:"employment_type"`
	ExperienceLevel string `json:"experience_level"`

	SalaryMin *float64 `json:"salary_min"`
	SalaryMax *float64 `json:"salary_max"`

	Requirements           []string `json:"requirements"`
	Advantages             []string `json:"advantages"`
	RequiredLanguages      []string `json:"required_languages"`
	CertificationsRequired []string `json:"certifications_required"`
	Benefits               []string `json:"benefits"`

	PhysicalRequirements string `json:"physical_requirements"`
	ShiftWork            bool   `json:"shift_work"`
	WeekendWork          bool   `json:"weekend_work"`
}

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Description string    `json:"description"`

	Category        string `json:"category"`
	EmploymentType  string `json:"employment_type"`
	ExperienceLevel string `json:"experience_level"`

	SalaryMin *float64 `json:"salary_min"`
	SalaryMax *float64 `json:"salary_max"`

	Requirements           []string `json:"requirements"`
	Advantages             []string `json:"advantages"`
	RequiredLanguages      []string `json:"required_languages"`
	CertificationsRequired []string `json:"certifications_required"`
	Benefits               []string `json:"benefits"`

	PhysicalRequirements string `json:"physical_requirements"`
	ShiftWork            bool   `json:"shift_work"`
	WeekendWork          bool   `json:"weekend_work"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (r JobRequest) ToDomain() job.Job {
	return job.Job{
		Title:       r.Title,
		Location:    r.Location,
		Description: r.Description,

		Category:        job.NormalizeCategory(r.Category),
		EmploymentType:  job.EmploymentType(r.EmploymentType),
		ExperienceLevel: job.ExperienceLevel(r.ExperienceLevel),

		SalaryMin: r.SalaryMin,
		SalaryMax: r.SalaryMax,

		Requirements:           r.Requirements,
		Advantages:             r.Advantages,
		RequiredLanguages:      r.RequiredLanguages,
		CertificationsRequired: r.CertificationsRequired,
		Benefits:               r.Benefits,

		PhysicalRequirements: r.PhysicalRequirements,
		ShiftWork:            r.ShiftWork,
		WeekendWork:          r.WeekendWork,
	}
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Location:    j.Location,
		Description: j.Description,

		Category:        string(j.Category),
		EmploymentType:  string(j.EmploymentType),
		ExperienceLevel: string(j.ExperienceLevel),

		SalaryMin: j.SalaryMin,
		SalaryMax: j.SalaryMax,

		Requirements:           emptyIfNil(j.Requirements),
		Advantages:             emptyIfNil(j.Advantages),
		RequiredLanguages:      emptyIfNil(j.RequiredLanguages),
		CertificationsRequired: emptyIfNil(j.CertificationsRequired),
		Benefits:               emptyIfNil(j.Benefits),

		PhysicalRequirements: j.PhysicalRequirements,
		ShiftWork:            j.ShiftWork,
		WeekendWork:          j.WeekendWork,

		CreatedAt: formatTime(j.CreatedAt),
		UpdatedAt: formatTime(j.UpdatedAt),
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
