package usecase

import (
	"context"
	"fmt"
	"strings"

	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CandidateUsecase interface {
	Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	Get(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error)
	Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Candidates struct {
	repo  repository.CandidateRepository
	cache ListCache
	log   *zap.Logger
}

func NewCandidateUsecase(repo repository.CandidateRepository, cache ListCache, log *zap.Logger) *Candidates {
	if log == nil {
		log = zap.NewNop()
	}
	return &Candidates{repo: repo, cache: cache, log: log}
}

func (u *Candidates) Create(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if err := validateCandidate(c); err != nil {
		return candidate.Candidate{}, err
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error("create candidate failed", zap.Error(err))
		return candidate.Candidate{}, ErrInternal
	}

	u.invalidateLists(ctx)
	return created, nil
}

func (u *Candidates) Get(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	if id == uuid.Nil {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrCandidateNotFound {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return c, nil
}

func (u *Candidates) List(ctx context.Context, limit, offset int) ([]candidate.Candidate, error) {
	if limit < 0 || offset < 0 {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = 50
	}

	key := fmt.Sprintf("candidates:list:%d:%d", limit, offset)
	if u.cache != nil {
		var cached []candidate.Candidate
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	candidates, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, candidates, 0)
	}
	return candidates, nil
}

func (u *Candidates) Update(ctx context.Context, c candidate.Candidate) (candidate.Candidate, error) {
	if c.ID == uuid.Nil {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	if err := validateCandidate(c); err != nil {
		return candidate.Candidate{}, err
	}

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		if err == repository.ErrCandidateNotFound {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}

	u.invalidateLists(ctx)
	return updated, nil
}

func (u *Candidates) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrCandidateNotFound
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !deleted {
		return ErrCandidateNotFound
	}

	u.invalidateLists(ctx)
	return nil
}

func (u *Candidates) invalidateLists(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, "candidates:list:*"); err != nil {
		u.log.Warn("invalidate candidate lists failed", zap.Error(err))
	}
}

func validateCandidate(c candidate.Candidate) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Location) == "" {
		return ErrInvalidInput
	}
	if c.SalaryExpectation < 0 {
		return ErrInvalidInput
	}
	if c.PreferredEmploymentType != "" && !c.PreferredEmploymentType.Valid() {
		return ErrInvalidInput
	}
	if c.ExperienceLevel != "" && !c.ExperienceLevel.Valid() {
		return ErrInvalidInput
	}
	return nil
}
