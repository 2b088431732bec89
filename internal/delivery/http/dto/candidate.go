package dto

import (
	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
)

type CandidateRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`

	Email       string `json:"email"`
	Phone       string `json:"phone"`
	YearOfBirth string `json:"year_of_birth"`

	Education  string   `json:"education"`
	Experience []string `json:"experience"`

	YearsOfExperience int    `json:"years_of_experience"`
	ExperienceLevel   string `json:"experience_level"`

	Skills         []string `json:"skills"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`

	WillingToWorkShifts     bool   `json:"willing_to_work_shifts"`
	WillingToWorkWeekends   bool   `json:"willing_to_work_weekends"`
	PreferredEmploymentType string `json:"preferred_employment_type"`

	SalaryExpectation float64 `json:"salary_expectation"`
}

type CandidateResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`

	Email       string `json:"email"`
	Phone       string `json:"phone"`
	YearOfBirth string `json:"year_of_birth"`

	Education  string   `json:"education"`
	Experience []string `json:"experience"`

	YearsOfExperience int    `json:"years_of_experience"`
	ExperienceLevel   string `json:"experience_level"`

	Skills         []string `json:"skills"`
	Languages      []string `json:"languages"`
	Certifications []string `json:"certifications"`

	WillingToWorkShifts     bool   `json:"willing_to_work_shifts"`
	WillingToWorkWeekends   bool   `json:"willing_to_work_weekends"`
	PreferredEmploymentType string `json:"preferred_employment_type"`

	SalaryExpectation float64 `json:"salary_expectation"`

	ResumeFilename    string `json:"resume_filename,omitempty"`
	ResumeContentType string `json:"resume_content_type,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (r CandidateRequest) ToDomain() candidate.Candidate {
	return candidate.Candidate{
		Name:     r.Name,
		Location: r.Location,

		Email:       r.Email,
		Phone:       r.Phone,
		YearOfBirth: r.YearOfBirth,

		Education:  r.Education,
		Experience: r.Experience,

		YearsOfExperience: r.YearsOfExperience,
		ExperienceLevel:   job.ExperienceLevel(r.ExperienceLevel),

		Skills:         r.Skills,
		Languages:      r.Languages,
		Certifications: r.Certifications,

		WillingToWorkShifts:     r.WillingToWorkShifts,
		WillingToWorkWeekends:   r.WillingToWorkWeekends,
		PreferredEmploymentType: job.EmploymentType(r.PreferredEmploymentType),

		SalaryExpectation: r.SalaryExpectation,
	}
}

func NewCandidateResponse(c candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:       c.ID,
		Name:     c.Name,
		Location: c.Location,

		Email:       c.Email,
		Phone:       c.Phone,
		YearOfBirth: c.YearOfBirth,

		Education:  c.Education,
		Experience: emptyIfNil(c.Experience),

		YearsOfExperience: c.YearsOfExperience,
		ExperienceLevel:   string(c.ExperienceLevel),

		Skills:         emptyIfNil(c.Skills),
		Languages:      emptyIfNil(c.Languages),
		Certifications: emptyIfNil(c.Certifications),

		WillingToWorkShifts:     c.WillingToWorkShifts,
		WillingToWorkWeekends:   c.WillingToWorkWeekends,
		PreferredEmploymentType: string(c.PreferredEmploymentType),

		SalaryExpectation: c.SalaryExpectation,

		ResumeFilename:    c.ResumeFilename,
		ResumeContentType: c.ResumeContentType,

		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func NewCandidateResponses(candidates []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, NewCandidateResponse(c))
	}
	return out
}
