package matching

import (
	"fmt"
	"sort"
	"strings"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
)

// Weights are blend coefficients per job category, not a probability
// distribution; they sum to roughly 1.0 but exact normalization is not
// enforced.
type Weights struct {
	Skills         float64
	Experience     float64
	Education      float64
	Languages      float64
	Availability   float64
	Certifications float64
}

var categoryWeights = map[job.Category]Weights{
	job.CategoryTechnology: {
		Skills:         0.40,
		Experience:     0.25,
		Education:      0.20,
		Languages:      0.10,
		Availability:   0.05,
		Certifications: fallbackCertificationsWeight,
	},
	job.CategoryRetail: {
		Skills:         0.15,
		Experience:     0.20,
		Education:      0.05,
		Languages:      0.20,
		Availability:   0.40,
		Certifications: fallbackCertificationsWeight,
	},
	job.CategoryHospitality: {
		Skills:         0.15,
		Experience:     0.20,
		Education:      0.05,
		Languages:      0.30,
		Availability:   0.30,
		Certifications: fallbackCertificationsWeight,
	},
	job.CategoryHealthcare: {
		Skills:         0.25,
		Experience:     0.25,
		Education:      0.20,
		Languages:      0.15,
		Availability:   0.15,
		Certifications: 0.30,
	},
	job.CategoryManufacturing: {
		Skills:         0.25,
		Experience:     0.30,
		Education:      0.05,
		Languages:      0.05,
		Availability:   0.25,
		Certifications: 0.10,
	},
	job.CategoryCustomerService: {
		Skills:         0.20,
		Experience:     0.20,
		Education:      0.10,
		Languages:      0.35,
		Availability:   0.15,
		Certifications: fallbackCertificationsWeight,
	},
}

// fallbackCertificationsWeight applies to categories whose weight table sets
// no certifications coefficient of its own, so a passing certifications check
// still contributes to the blend.
const fallbackCertificationsWeight = 0.10

var defaultWeights = Weights{
	Skills:         0.25,
	Experience:     0.25,
	Education:      0.15,
	Languages:      0.15,
	Availability:   0.15,
	Certifications: 0.05,
}

func WeightsFor(cat job.Category) Weights {
	if w, ok := categoryWeights[cat]; ok {
		return w
	}
	return defaultWeights
}

// ScoreAvailability checks shift and weekend willingness. Each satisfied or
// non-applicable dimension contributes 0.5; an unwilling candidate on a
// required dimension is a hard reject.
func ScoreAvailability(j job.Job, c candidate.Candidate) (float64, string) {
	score := 0.0
	reasons := make([]string, 0, 2)

	if j.ShiftWork {
		if !c.WillingToWorkShifts {
			return 0.0, "Not willing to work shifts (required)"
		}
		score += 0.5
		reasons = append(reasons, "Willing to work shifts")
	} else {
		score += 0.5
	}

	if j.WeekendWork {
		if !c.WillingToWorkWeekends {
			return 0.0, "Not willing to work weekends (required)"
		}
		score += 0.5
		reasons = append(reasons, "Willing to work weekends")
	} else {
		score += 0.5
	}

	if len(reasons) == 0 {
		return score, "No special availability required"
	}
	return score, strings.Join(reasons, " | ")
}

// ScoreCertifications is a hard filter: every required certification must be
// present in the candidate's set.
func ScoreCertifications(j job.Job, c candidate.Candidate) (float64, string) {
	required := normalizeSet(j.CertificationsRequired)
	if len(required) == 0 {
		return 1.0, "No certifications required"
	}

	held := normalizeSet(c.Certifications)

	missing := make([]string, 0, len(required))
	for cert := range required {
		if _, ok := held[cert]; !ok {
			missing = append(missing, cert)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return 0.0, "Missing certifications: " + strings.Join(missing, ", ")
	}

	have := make([]string, 0, len(required))
	for cert := range required {
		have = append(have, cert)
	}
	sort.Strings(have)
	return 1.0, "Has all required certifications: " + strings.Join(have, ", ")
}

// ScoreEmploymentType is a soft preference and never rejects.
func ScoreEmploymentType(j job.Job, c candidate.Candidate) (float64, string) {
	if c.PreferredEmploymentType == "" {
		return 0.5, "No employment type preference"
	}
	if j.EmploymentType == c.PreferredEmploymentType {
		return 1.0, fmt.Sprintf("Prefers %s", j.EmploymentType)
	}
	return 0.3, fmt.Sprintf("Prefers %s, job is %s", c.PreferredEmploymentType, j.EmploymentType)
}
