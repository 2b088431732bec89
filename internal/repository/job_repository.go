package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobmatcher/internal/database"
	"jobmatcher/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, limit, offset int) ([]job.Job, error)
	Update(ctx context.Context, j job.Job) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, location, description, category, employment_type, experience_level,
	salary_min, salary_max, requirements, advantages, required_languages,
	certifications_required, benefits, COALESCE(physical_requirements, ''),
	shift_work, weekend_work, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, location, description, category, employment_type,
			experience_level, salary_min, salary_max, requirements, advantages,
			required_languages, certifications_required, benefits, physical_requirements,
			shift_work, weekend_work, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		j.ID, j.Title, j.Location, j.Description, string(j.Category), string(j.EmploymentType),
		string(j.ExperienceLevel), j.SalaryMin, j.SalaryMax,
		marshalList(j.Requirements), marshalList(j.Advantages), marshalList(j.RequiredLanguages),
		marshalList(j.CertificationsRequired), marshalList(j.Benefits),
		nullIfEmpty(j.PhysicalRequirements), j.ShiftWork, j.WeekendWork, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	j.UpdatedAt = time.Now().UTC()

	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET title = $2, location = $3, description = $4, category = $5,
			employment_type = $6, experience_level = $7, salary_min = $8, salary_max = $9,
			requirements = $10, advantages = $11, required_languages = $12,
			certifications_required = $13, benefits = $14, physical_requirements = $15,
			shift_work = $16, weekend_work = $17, updated_at = $18
		 WHERE id = $1`,
		j.ID, j.Title, j.Location, j.Description, string(j.Category), string(j.EmploymentType),
		string(j.ExperienceLevel), j.SalaryMin, j.SalaryMax,
		marshalList(j.Requirements), marshalList(j.Advantages), marshalList(j.RequiredLanguages),
		marshalList(j.CertificationsRequired), marshalList(j.Benefits),
		nullIfEmpty(j.PhysicalRequirements), j.ShiftWork, j.WeekendWork, j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	if affected == 0 {
		return job.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var (
		j                                            job.Job
		category, employmentType, experienceLevel    string
		requirements, advantages, requiredLanguages  []byte
		certificationsRequired, benefits             []byte
	)
	err := row.Scan(
		&j.ID, &j.Title, &j.Location, &j.Description, &category, &employmentType,
		&experienceLevel, &j.SalaryMin, &j.SalaryMax, &requirements, &advantages,
		&requiredLanguages, &certificationsRequired, &benefits, &j.PhysicalRequirements,
		&j.ShiftWork, &j.WeekendWork, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}

	j.Category = job.Category(category)
	j.EmploymentType = job.EmploymentType(employmentType)
	j.ExperienceLevel = job.ExperienceLevel(experienceLevel)
	j.Requirements = unmarshalList(requirements)
	j.Advantages = unmarshalList(advantages)
	j.RequiredLanguages = unmarshalList(requiredLanguages)
	j.CertificationsRequired = unmarshalList(certificationsRequired)
	j.Benefits = unmarshalList(benefits)
	return j, nil
}

func marshalList(items []string) []byte {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return []byte("[]")
	}
	return b
}

func unmarshalList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
