package matching

import (
	"fmt"
	"sort"
	"strings"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
)

// Each scorer returns a sub-score in [0,1] and a human-readable reason.
// Requirement/advantage matching is substring containment over the candidate's
// combined experience and skills text. This is deliberately naive: no
// stemming or tokenization, so matches stay deterministic and explainable.

const advantageBonusPerMatch = 0.2

func ScoreLocation(j job.Job, c candidate.Candidate) (float64, string) {
	jobLoc := strings.ToLower(strings.TrimSpace(j.Location))
	candLoc := strings.ToLower(strings.TrimSpace(c.Location))

	if jobLoc == candLoc {
		return 1.0, "Exact location match"
	}
	if jobLoc != "" && candLoc != "" && (strings.Contains(candLoc, jobLoc) || strings.Contains(jobLoc, candLoc)) {
		return 0.8, "Partial location match"
	}
	return 0.3, "Different location"
}

func ScoreSalary(j job.Job, c candidate.Candidate) (float64, string) {
	if j.SalaryMin == nil && j.SalaryMax == nil {
		return 0.5, "No salary constraints"
	}

	expectation := c.SalaryExpectation

	if j.SalaryMin != nil && expectation < *j.SalaryMin {
		return 0.0, fmt.Sprintf("Below minimum salary (expects %.0f, min %.0f)", expectation, *j.SalaryMin)
	}
	if j.SalaryMax != nil && expectation > *j.SalaryMax {
		return 0.0, fmt.Sprintf("Above maximum salary (expects %.0f, max %.0f)", expectation, *j.SalaryMax)
	}

	if j.SalaryMin != nil && j.SalaryMax != nil {
		return 1.0, fmt.Sprintf("Salary in range (%.0f-%.0f)", *j.SalaryMin, *j.SalaryMax)
	}
	if j.SalaryMax != nil {
		return 1.0, fmt.Sprintf("Below maximum salary (max %.0f)", *j.SalaryMax)
	}
	return 1.0, fmt.Sprintf("Above minimum salary (min %.0f)", *j.SalaryMin)
}

func ScoreRequirements(j job.Job, c candidate.Candidate) (float64, string) {
	if len(j.Requirements) == 0 {
		return 1.0, "No requirements specified"
	}

	profile := profileText(c)

	matched := 0
	for _, req := range j.Requirements {
		if strings.Contains(profile, strings.ToLower(req)) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(j.Requirements))
	switch {
	case ratio == 1.0:
		return 1.0, fmt.Sprintf("Meets all %d requirements", len(j.Requirements))
	case ratio > 0:
		return ratio, fmt.Sprintf("Meets %d/%d requirements", matched, len(j.Requirements))
	default:
		return 0.0, "No requirements met"
	}
}

func ScoreAdvantages(j job.Job, c candidate.Candidate) (float64, string) {
	if len(j.Advantages) == 0 {
		return 0.0, "No advantages specified"
	}

	profile := profileText(c)

	matched := 0
	for _, adv := range j.Advantages {
		if strings.Contains(profile, strings.ToLower(adv)) {
			matched++
		}
	}

	if matched == 0 {
		return 0.0, "No advantages matched"
	}

	bonus := float64(matched) * advantageBonusPerMatch
	if bonus > 1.0 {
		bonus = 1.0
	}
	return bonus, fmt.Sprintf("Has %d/%d nice-to-haves", matched, len(j.Advantages))
}

func ScoreLanguages(j job.Job, c candidate.Candidate) (float64, string) {
	if len(j.RequiredLanguages) == 0 {
		return 0.0, "No language requirements"
	}

	required := normalizeSet(j.RequiredLanguages)
	spoken := normalizeSet(c.Languages)

	matched := make([]string, 0, len(required))
	for lang := range required {
		if _, ok := spoken[lang]; ok {
			matched = append(matched, lang)
		}
	}
	sort.Strings(matched)

	switch {
	case len(matched) == len(required):
		return 1.0, "Speaks all required languages: " + strings.Join(matched, ", ")
	case len(matched) > 0:
		return float64(len(matched)) / float64(len(required)),
			fmt.Sprintf("Speaks %d/%d required languages", len(matched), len(required))
	default:
		missing := make([]string, 0, len(required))
		for lang := range required {
			missing = append(missing, lang)
		}
		sort.Strings(missing)
		return 0.0, "Missing required languages: " + strings.Join(missing, ", ")
	}
}

func profileText(c candidate.Candidate) string {
	parts := make([]string, 0, len(c.Experience)+len(c.Skills))
	parts = append(parts, c.Experience...)
	parts = append(parts, c.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}

func normalizeSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		v := strings.ToLower(strings.TrimSpace(it))
		if v == "" {
			continue
		}
		out[v] = struct{}{}
	}
	return out
}
