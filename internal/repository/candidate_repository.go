package repository

import (
	"context"
	"errors"
	"time"

	"jobmatcher/internal/database"
	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error)
	Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, name, location, COALESCE(email, ''), COALESCE(phone, ''),
	COALESCE(year_of_birth, ''), education, experience, years_of_experience,
	COALESCE(experience_level, ''), skills, languages, certifications,
	willing_to_work_shifts, willing_to_work_weekends, COALESCE(preferred_employment_type, ''),
	salary_expectation, COALESCE(resume_filename, ''), COALESCE(resume_content_type, ''),
	created_at, updated_at`

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (id, name, location, email, phone, year_of_birth, education,
			experience, years_of_experience, experience_level, skills, languages,
			certifications, willing_to_work_shifts, willing_to_work_weekends,
			preferred_employment_type, salary_expectation, resume_filename,
			resume_content_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		c.ID, c.Name, c.Location, nullIfEmpty(c.Email), nullIfEmpty(c.Phone),
		nullIfEmpty(c.YearOfBirth), c.Education, marshalList(c.Experience),
		c.YearsOfExperience, nullIfEmpty(string(c.ExperienceLevel)),
		marshalList(c.Skills), marshalList(c.Languages), marshalList(c.Certifications),
		c.WillingToWorkShifts, c.WillingToWorkWeekends,
		nullIfEmpty(string(c.PreferredEmploymentType)), c.SalaryExpectation,
		nullIfEmpty(c.ResumeFilename), nullIfEmpty(c.ResumeContentType),
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	c.UpdatedAt = time.Now().UTC()

	affected, err := r.db.Exec(ctx,
		`UPDATE candidates SET name = $2, location = $3, email = $4, phone = $5,
			year_of_birth = $6, education = $7, experience = $8, years_of_experience = $9,
			experience_level = $10, skills = $11, languages = $12, certifications = $13,
			willing_to_work_shifts = $14, willing_to_work_weekends = $15,
			preferred_employment_type = $16, salary_expectation = $17,
			resume_filename = $18, resume_content_type = $19, updated_at = $20
		 WHERE id = $1`,
		c.ID, c.Name, c.Location, nullIfEmpty(c.Email), nullIfEmpty(c.Phone),
		nullIfEmpty(c.YearOfBirth), c.Education, marshalList(c.Experience),
		c.YearsOfExperience, nullIfEmpty(string(c.ExperienceLevel)),
		marshalList(c.Skills), marshalList(c.Languages), marshalList(c.Certifications),
		c.WillingToWorkShifts, c.WillingToWorkWeekends,
		nullIfEmpty(string(c.PreferredEmploymentType)), c.SalaryExpectation,
		nullIfEmpty(c.ResumeFilename), nullIfEmpty(c.ResumeContentType), c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if affected == 0 {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	return c, nil
}

func (r *PostgresCandidateRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var (
		c                                        candidate.Candidate
		experienceLevel, preferredEmployment     string
		experience, skills, languages, certs     []byte
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Location, &c.Email, &c.Phone, &c.YearOfBirth, &c.Education,
		&experience, &c.YearsOfExperience, &experienceLevel, &skills, &languages, &certs,
		&c.WillingToWorkShifts, &c.WillingToWorkWeekends, &preferredEmployment,
		&c.SalaryExpectation, &c.ResumeFilename, &c.ResumeContentType,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return candidate.Candidate{}, err
	}

	c.ExperienceLevel = job.ExperienceLevel(experienceLevel)
	c.PreferredEmploymentType = job.EmploymentType(preferredEmployment)
	c.Experience = unmarshalList(experience)
	c.Skills = unmarshalList(skills)
	c.Languages = unmarshalList(languages)
	c.Certifications = unmarshalList(certs)
	return c, nil
}
