package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTechnology      Category = "Technology"
	CategoryHealthcare      Category = "Healthcare"
	CategoryRetail          Category = "Retail"
	CategoryHospitality     Category = "Hospitality"
	CategoryManufacturing   Category = "Manufacturing"
	CategoryEducation       Category = "Education"
	CategoryFinance         Category = "Finance"
	CategoryConstruction    Category = "Construction"
	CategoryLogistics       Category = "Logistics"
	CategoryCustomerService Category = "Customer Service"
	CategorySales           Category = "Sales"
	CategoryAdministration  Category = "Administration"
	CategoryOther           Category = "Other"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full Time"
	EmploymentPartTime   EmploymentType = "Part Time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentTemporary  EmploymentType = "Temporary"
	EmploymentInternship EmploymentType = "Internship"
	EmploymentFreelance  EmploymentType = "Freelance"
)

type ExperienceLevel string

const (
	ExperienceEntryLevel  ExperienceLevel = "Entry Level"
	ExperienceJunior      ExperienceLevel = "Junior"
	ExperienceMidLevel    ExperienceLevel = "Mid Level"
	ExperienceSenior      ExperienceLevel = "Senior"
	ExperienceExecutive   ExperienceLevel = "Executive"
	ExperienceNotRequired ExperienceLevel = "No Experience Required"
)

var ErrInvalidSalaryRange = errors.New("salary_min must not exceed salary_max")

type Job struct {
	ID          uuid.UUID
	Title       string
	Location    string
	Description string

	Category        Category
	EmploymentType  EmploymentType
	ExperienceLevel ExperienceLevel

	SalaryMin *float64
	SalaryMax *float64

	Requirements           []string
	Advantages             []string
	RequiredLanguages      []string
	CertificationsRequired []string
	Benefits               []string

	PhysicalRequirements string
	ShiftWork            bool
	WeekendWork          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (j Job) Validate() error {
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return ErrInvalidSalaryRange
	}
	return nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryHealthcare, CategoryRetail, CategoryHospitality,
		CategoryManufacturing, CategoryEducation, CategoryFinance, CategoryConstruction,
		CategoryLogistics, CategoryCustomerService, CategorySales, CategoryAdministration,
		CategoryOther:
		return true
	}
	return false
}

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentTemporary, EmploymentInternship, EmploymentFreelance:
		return true
	}
	return false
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntryLevel, ExperienceJunior, ExperienceMidLevel,
		ExperienceSenior, ExperienceExecutive, ExperienceNotRequired:
		return true
	}
	return false
}

// NormalizeCategory maps free-form input onto the closed category set,
// falling back to Other.
func NormalizeCategory(raw string) Category {
	c := Category(raw)
	if c.Valid() {
		return c
	}
	return CategoryOther
}
