package candidate

import (
	"time"

	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
)

type Candidate struct {
	ID       uuid.UUID
	Name     string
	Location string

	Email       string
	Phone       string
	YearOfBirth string

	Education  string
	Experience []string

	YearsOfExperience int
	ExperienceLevel   job.ExperienceLevel

	Skills         []string
	Languages      []string
	Certifications []string

	WillingToWorkShifts     bool
	WillingToWorkWeekends   bool
	PreferredEmploymentType job.EmploymentType // empty means no preference

	SalaryExpectation float64

	ResumeFilename    string
	ResumeContentType string

	CreatedAt time.Time
	UpdatedAt time.Time
}
