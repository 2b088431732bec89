package matching

import (
	"strings"
	"testing"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"
)

func f64(v float64) *float64 { return &v }

func TestScoreLocation(t *testing.T) {
	tests := []struct {
		name    string
		jobLoc  string
		candLoc string
		want    float64
	}{
		{"exact", "Berlin", "Berlin", 1.0},
		{"exact case insensitive", "berlin", " BERLIN ", 1.0},
		{"partial contains", "Berlin Mitte", "Berlin", 0.8},
		{"partial reversed", "Berlin", "Berlin Mitte", 0.8},
		{"different", "Berlin", "Munich", 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := ScoreLocation(job.Job{Location: tt.jobLoc}, candidate.Candidate{Location: tt.candLoc})
			if score != tt.want {
				t.Fatalf("got %v, want %v", score, tt.want)
			}
		})
	}
}

func TestScoreSalary_InRange(t *testing.T) {
	j := job.Job{SalaryMin: f64(5000), SalaryMax: f64(8000)}
	c := candidate.Candidate{SalaryExpectation: 6000}

	score, reason := ScoreSalary(j, c)
	if score != 1.0 {
		t.Fatalf("expected 1.0, got %v", score)
	}
	if !strings.Contains(reason, "5000-8000") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreSalary_AboveMaximum(t *testing.T) {
	j := job.Job{SalaryMin: f64(5000), SalaryMax: f64(8000)}
	c := candidate.Candidate{SalaryExpectation: 9000}

	score, reason := ScoreSalary(j, c)
	if score != 0.0 {
		t.Fatalf("expected 0.0, got %v", score)
	}
	if !strings.Contains(reason, "Above maximum salary") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreSalary_BelowMinimum(t *testing.T) {
	j := job.Job{SalaryMin: f64(5000)}
	c := candidate.Candidate{SalaryExpectation: 4000}

	score, reason := ScoreSalary(j, c)
	if score != 0.0 {
		t.Fatalf("expected 0.0, got %v", score)
	}
	if !strings.Contains(reason, "Below minimum salary") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreSalary_NoBounds(t *testing.T) {
	score, reason := ScoreSalary(job.Job{}, candidate.Candidate{SalaryExpectation: 6000})
	if score != 0.5 {
		t.Fatalf("expected 0.5, got %v", score)
	}
	if reason != "No salary constraints" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreRequirements_All(t *testing.T) {
	j := job.Job{Requirements: []string{"python", "sql"}}
	c := candidate.Candidate{
		Experience: []string{"Backend developer using Python"},
		Skills:     []string{"SQL", "Docker"},
	}

	score, reason := ScoreRequirements(j, c)
	if score != 1.0 {
		t.Fatalf("expected 1.0, got %v", score)
	}
	if !strings.Contains(reason, "Meets all 2 requirements") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreRequirements_Partial(t *testing.T) {
	j := job.Job{Requirements: []string{"python", "kubernetes"}}
	c := candidate.Candidate{Skills: []string{"Python"}}

	score, reason := ScoreRequirements(j, c)
	if score != 0.5 {
		t.Fatalf("expected 0.5, got %v", score)
	}
	if !strings.Contains(reason, "Meets 1/2 requirements") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreRequirements_None(t *testing.T) {
	j := job.Job{Requirements: []string{"rust"}}
	c := candidate.Candidate{Skills: []string{"Python"}}

	score, reason := ScoreRequirements(j, c)
	if score != 0.0 {
		t.Fatalf("expected 0.0, got %v", score)
	}
	if reason != "No requirements met" {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreRequirements_NoneSpecified(t *testing.T) {
	score, _ := ScoreRequirements(job.Job{}, candidate.Candidate{})
	if score != 1.0 {
		t.Fatalf("expected 1.0, got %v", score)
	}
}

func TestScoreAdvantages_CapsAtOne(t *testing.T) {
	j := job.Job{Advantages: []string{"go", "sql", "aws", "docker", "react", "vue"}}
	c := candidate.Candidate{Skills: []string{"Go", "SQL", "AWS", "Docker", "React", "Vue"}}

	score, reason := ScoreAdvantages(j, c)
	if score != 1.0 {
		t.Fatalf("expected cap at 1.0, got %v", score)
	}
	if !strings.Contains(reason, "6/6") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreLanguages(t *testing.T) {
	j := job.Job{RequiredLanguages: []string{"English", "German"}}

	score, reason := ScoreLanguages(j, candidate.Candidate{Languages: []string{"english", "german"}})
	if score != 1.0 {
		t.Fatalf("expected 1.0, got %v", score)
	}
	if !strings.Contains(reason, "Speaks all required languages") {
		t.Fatalf("unexpected reason: %q", reason)
	}

	score, reason = ScoreLanguages(j, candidate.Candidate{Languages: []string{"English"}})
	if score != 0.5 {
		t.Fatalf("expected 0.5, got %v", score)
	}
	if !strings.Contains(reason, "Speaks 1/2 required languages") {
		t.Fatalf("unexpected reason: %q", reason)
	}

	score, reason = ScoreLanguages(j, candidate.Candidate{Languages: []string{"French"}})
	if score != 0.0 {
		t.Fatalf("expected 0.0, got %v", score)
	}
	if !strings.Contains(reason, "Missing required languages") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestScoreRequirements_Monotonic(t *testing.T) {
	j := job.Job{Requirements: []string{"python", "sql", "docker"}}

	weaker := candidate.Candidate{Skills: []string{"Python"}}
	stronger := candidate.Candidate{Skills: []string{"Python", "SQL"}}

	weakScore, _ := ScoreRequirements(j, weaker)
	strongScore, _ := ScoreRequirements(j, stronger)
	if strongScore <= weakScore {
		t.Fatalf("expected stronger profile to score higher: %v <= %v", strongScore, weakScore)
	}
}
