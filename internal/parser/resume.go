package parser

import (
	"context"
	"fmt"
	"strings"
)

// ParsedResume is the normalized extraction of a resume: structured entries
// flattened into the line-per-item shape the candidate record stores.
type ParsedResume struct {
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	YearOfBirth       string   `json:"year_of_birth"`
	Education         string   `json:"education"`
	Experience        []string `json:"experience"`
	Languages         []string `json:"languages"`
	Skills            []string `json:"skills"`
	SalaryExpectation *float64 `json:"salary_expectation"`
}

type resumePayload struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	YearOfBirth any    `json:"year_of_birth"`
	Education   []struct {
		Title       string `json:"title"`
		Institution string `json:"institution"`
		Dates       string `json:"dates"`
	} `json:"education"`
	Experience []struct {
		Company  string `json:"company"`
		Position string `json:"position"`
		Dates    string `json:"dates"`
	} `json:"experience"`
	Languages []struct {
		Name        string `json:"name"`
		Proficiency string `json:"proficiency"`
	} `json:"languages"`
	Skills            []string `json:"skills"`
	SalaryExpectation *float64 `json:"salary_expectation"`
}

const resumePrompt = `You are a STRICT resume parser.

Extract ONLY information explicitly present in the resume.
If a field is missing, return an empty string, null, or an empty list.

Return VALID JSON ONLY.

FORMAT:
{
  "name": "",
  "location": "",
  "email": "",
  "phone": "",
  "year_of_birth": "",
  "education": [{"title": "", "institution": "", "dates": ""}],
  "experience": [{"company": "", "position": "", "dates": ""}],
  "languages": [{"name": "", "proficiency": ""}],
  "skills": [],
  "salary_expectation": null
}

Resume:
"""%s"""`

// ParseResume extracts structured candidate fields from resume text.
func (c *Client) ParseResume(ctx context.Context, text string) (ParsedResume, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(resumePrompt, text))
	if err != nil {
		return ParsedResume{}, err
	}

	var payload resumePayload
	if err := decodeJSON(raw, &payload); err != nil {
		return ParsedResume{}, fmt.Errorf("parse resume output: %w", err)
	}
	return normalizeResume(payload), nil
}

func normalizeResume(p resumePayload) ParsedResume {
	education := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		if line := joinPipe(e.Title, e.Institution, e.Dates); line != "" {
			education = append(education, line)
		}
	}

	experience := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		if line := joinPipe(e.Company, e.Position, e.Dates); line != "" {
			experience = append(experience, line)
		}
	}

	languages := make([]string, 0, len(p.Languages))
	for _, l := range p.Languages {
		parts := nonEmpty(l.Name, l.Proficiency)
		if len(parts) > 0 {
			languages = append(languages, strings.Join(parts, " - "))
		}
	}

	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	return ParsedResume{
		Name:              p.Name,
		Location:          p.Location,
		Email:             p.Email,
		Phone:             p.Phone,
		YearOfBirth:       stringify(p.YearOfBirth),
		Education:         strings.Join(education, "\n"),
		Experience:        experience,
		Languages:         languages,
		Skills:            skills,
		SalaryExpectation: p.SalaryExpectation,
	}
}

func joinPipe(parts ...string) string {
	return strings.Join(nonEmpty(parts...), " | ")
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
