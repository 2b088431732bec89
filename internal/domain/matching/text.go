package matching

import (
	"strings"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
)

// BuildJobText flattens a job into the text fed to the embedding model.
// Whitespace-sensitive: identical jobs produce identical text, so the
// embedding cache can key on it directly.
func BuildJobText(j job.Job) string {
	parts := []string{
		j.Title,
		j.Location,
		j.Description,
		strings.Join(j.Requirements, " "),
		strings.Join(j.Advantages, " "),
		strings.Join(j.RequiredLanguages, " "),
	}
	return joinNonEmpty(parts)
}

// BuildCandidateText flattens a candidate into the text fed to the embedding
// model.
func BuildCandidateText(c candidate.Candidate) string {
	parts := []string{
		c.Name,
		c.Location,
		c.Education,
		strings.Join(c.Experience, " "),
		strings.Join(c.Languages, " "),
		strings.Join(c.Skills, " "),
	}
	return joinNonEmpty(parts)
}

func joinNonEmpty(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, " ")
}
