package usecase

import (
	"context"
	"fmt"
	"strings"

	"jobmatcher/internal/domain/job"
	"jobmatcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobUsecase interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	List(ctx context.Context, limit, offset int) ([]job.Job, error)
	Update(ctx context.Context, j job.Job) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Jobs struct {
	repo  repository.JobRepository
	cache ListCache
	log   *zap.Logger
}

func NewJobUsecase(repo repository.JobRepository, cache ListCache, log *zap.Logger) *Jobs {
	if log == nil {
		log = zap.NewNop()
	}
	return &Jobs{repo: repo, cache: cache, log: log}
}

func (u *Jobs) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if err := validateJob(j); err != nil {
		return job.Job{}, err
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		u.log.Error("create job failed", zap.Error(err))
		return job.Job{}, ErrInternal
	}

	u.invalidateLists(ctx)
	return created, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	if id == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrJobNotFound {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) List(ctx context.Context, limit, offset int) ([]job.Job, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = 50
	}

	key := fmt.Sprintf("jobs:list:%d:%d", limit, offset)
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, jobs, 0)
	}
	return jobs, nil
}

func (u *Jobs) Update(ctx context.Context, j job.Job) (job.Job, error) {
	if j.ID == uuid.Nil {
		return job.Job{}, ErrJobNotFound
	}
	if err := validateJob(j); err != nil {
		return job.Job{}, err
	}

	updated, err := u.repo.Update(ctx, j)
	if err != nil {
		if err == repository.ErrJobNotFound {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateLists(ctx)
	return updated, nil
}

func (u *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrJobNotFound
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrJobNotFound
	}

	u.invalidateLists(ctx)
	return nil
}

func (u *Jobs) invalidateLists(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, "jobs:list:*"); err != nil {
		u.log.Warn("invalidate job lists failed", zap.Error(err))
	}
}

func validateJob(j job.Job) error {
	if strings.TrimSpace(j.Title) == "" ||
		strings.TrimSpace(j.Location) == "" ||
		strings.TrimSpace(j.Description) == "" {
		return ErrInvalidInput
	}
	if !j.Category.Valid() || !j.EmploymentType.Valid() || !j.ExperienceLevel.Valid() {
		return ErrInvalidInput
	}
	if err := j.Validate(); err != nil {
		return ErrInvalidInput
	}
	return nil
}
