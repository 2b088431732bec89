package handler

import (
	"errors"
	"strconv"

	"jobmatcher/internal/delivery/http/dto"
	"jobmatcher/internal/delivery/http/middleware"
	"jobmatcher/internal/delivery/http/response"
	"jobmatcher/internal/domain/matching"
	"jobmatcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// RegisterRoutes mounts the ranking endpoints on the candidate and job
// groups and the cache admin endpoints on the matching group.
func (h *MatchHandler) RegisterRoutes(candidates, jobs, matchingGroup fiber.Router) {
	if candidates != nil {
		candidates.Get("/:id/matches", h.MatchJobsForCandidate)
		candidates.Get("/:id/matches/top", h.TopMatch)
		candidates.Post("/:id/matches/filter", h.MatchWithFilters)
	}
	if jobs != nil {
		jobs.Get("/:id/matches", h.MatchCandidatesForJob)
	}
	if matchingGroup != nil {
		matchingGroup.Get("/cache/stats", h.CacheStats)
		matchingGroup.Delete("/cache", h.ClearCache)
	}
}

func (h *MatchHandler) MatchJobsForCandidate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	params, err := parseMatchParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match parameters", nil, err)
	}

	ranked, summary, err := h.uc.MatchJobsForCandidate(c.Context(), id, params)
	if err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateMatchesResponse(ranked, summary))
}

func (h *MatchHandler) TopMatch(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	top, err := h.uc.TopMatchForCandidate(c.Context(), id)
	if err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewTopMatchResponse(top))
}

func (h *MatchHandler) MatchWithFilters(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req dto.MatchFiltersRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid filter payload", nil, err)
	}

	params, err := parseMatchParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match parameters", nil, err)
	}

	ranked, summary, err := h.uc.MatchJobsWithFilters(c.Context(), id, req.ToFilters(), params)
	if err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewFilteredMatchesResponse(ranked, summary))
}

func (h *MatchHandler) MatchCandidatesForJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	params, err := parseMatchParams(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match parameters", nil, err)
	}

	ranked, summary, err := h.uc.MatchCandidatesForJob(c.Context(), id, params)
	if err != nil {
		return mapMatchError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchesResponse(ranked, summary))
}

func (h *MatchHandler) CacheStats(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCacheStatsResponse(h.uc.CacheStats()))
}

func (h *MatchHandler) ClearCache(c fiber.Ctx) error {
	h.uc.ClearCache()
	return response.Success(c, fiber.StatusOK, "Embedding cache cleared", nil)
}

func parseMatchParams(c fiber.Ctx) (usecase.MatchParams, error) {
	var p usecase.MatchParams

	if s := c.Query("min_score"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return p, err
		}
		p.MinScore = &v
	}

	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return p, err
	}
	p.Limit = limit

	p.Mode = matching.Mode(c.Query("mode"))
	return p, nil
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match parameters", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
