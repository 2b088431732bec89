package handler

import (
	"errors"
	"io"

	"jobmatcher/internal/delivery/http/dto"
	"jobmatcher/internal/delivery/http/middleware"
	"jobmatcher/internal/delivery/http/response"
	"jobmatcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ParseHandler struct {
	uc usecase.ParseUsecase
}

func NewParseHandler(uc usecase.ParseUsecase) *ParseHandler {
	return &ParseHandler{uc: uc}
}

func (h *ParseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resume", h.ParseResume)
	r.Post("/job", h.ParseJob)
}

// ParseResume accepts a multipart upload under the "file" field, extracts the
// resume text and stores the parsed candidate.
func (h *ParseHandler) ParseResume(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file upload", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file upload", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file upload", nil, err)
	}

	contentType := fh.Header.Get("Content-Type")

	created, err := h.uc.ParseResume(c.Context(), fh.Filename, contentType, data)
	if err != nil {
		return mapParseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Resume parsed", dto.NewCandidateResponse(created))
}

// ParseJob extracts structured fields from free job-posting text without
// storing anything.
func (h *ParseHandler) ParseJob(c fiber.Ctx) error {
	var req dto.ParseJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	parsed, err := h.uc.ParseJobText(c.Context(), req.Text)
	if err != nil {
		return mapParseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewParsedJobResponse(parsed))
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid parse input", nil, err)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusUnsupportedMediaType, response.MessageUnsupportedMedia, nil, err)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, response.MessagePayloadTooLarge, nil, err)
	case errors.Is(err, usecase.ErrParserUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Parsing service unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
