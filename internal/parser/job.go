package parser

import (
	"context"
	"fmt"
)

// ParsedJob is the strict extraction of a free-text job description. Missing
// fields stay empty; the parser never invents values.
type ParsedJob struct {
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

const jobPrompt = `You are a STRICT job description parser.

Extract ONLY information explicitly present.
If a field is missing, return an empty string or null.

Return VALID JSON ONLY.

FORMAT:
{
  "title": "",
  "location": "",
  "salary_min": null,
  "salary_max": null,
  "experience_level": "",
  "job_type": "",
  "skills": [],
  "languages": [],
  "description": ""
}

Job description:
"""%s"""`

// ParseJob extracts structured fields from a free-text job description.
func (c *Client) ParseJob(ctx context.Context, text string) (ParsedJob, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(jobPrompt, text))
	if err != nil {
		return ParsedJob{}, err
	}

	var parsed ParsedJob
	if err := decodeJSON(raw, &parsed); err != nil {
		return ParsedJob{}, fmt.Errorf("parse job output: %w", err)
	}
	if parsed.Skills == nil {
		parsed.Skills = []string{}
	}
	if parsed.Languages == nil {
		parsed.Languages = []string{}
	}
	return parsed, nil
}
