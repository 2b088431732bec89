package handler

import (
	"errors"

	"jobmatcher/internal/delivery/http/dto"
	"jobmatcher/internal/delivery/http/middleware"
	"jobmatcher/internal/delivery/http/response"
	"jobmatcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req dto.CandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	created, err := h.uc.Create(c.Context(), req.ToDomain())
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Candidate created", dto.NewCandidateResponse(created))
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	cand, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(cand))
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 50)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	candidates, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponses(candidates))
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	var req dto.CandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	cand := req.ToDomain()
	cand.ID = id

	updated, err := h.uc.Update(c.Context(), cand)
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, "Candidate updated", dto.NewCandidateResponse(updated))
}

func (h *CandidateHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate id", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, "Candidate deleted", nil)
}

func mapCandidateError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid candidate payload", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
