package usecase

import (
	"context"
	"strings"

	"jobmatcher/internal/config"
	"jobmatcher/internal/domain/candidate"
	"jobmatcher/internal/extract"
	"jobmatcher/internal/parser"
	"jobmatcher/internal/repository"

	"go.uber.org/zap"
)

// ResumeJobParser is the LLM extraction surface the parse usecase needs.
// Satisfied by *parser.Client; nil means parsing is not configured.
type ResumeJobParser interface {
	ParseResume(ctx context.Context, text string) (parser.ParsedResume, error)
	ParseJob(ctx context.Context, text string) (parser.ParsedJob, error)
}

type ParseUsecase interface {
	ParseResume(ctx context.Context, filename, contentType string, data []byte) (candidate.Candidate, error)
	ParseJobText(ctx context.Context, text string) (parser.ParsedJob, error)
}

type Parse struct {
	parser     ResumeJobParser
	candidates repository.CandidateRepository
	cfg        config.UploadConfig
	log        *zap.Logger
}

func NewParseUsecase(p ResumeJobParser, candidates repository.CandidateRepository, cfg config.UploadConfig, log *zap.Logger) *Parse {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parse{parser: p, candidates: candidates, cfg: cfg, log: log}
}

// ParseResume extracts text from an uploaded resume, runs LLM extraction and
// stores the resulting candidate.
func (u *Parse) ParseResume(ctx context.Context, filename, contentType string, data []byte) (candidate.Candidate, error) {
	if u.parser == nil {
		return candidate.Candidate{}, ErrParserUnavailable
	}
	if len(data) == 0 {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if u.cfg.MaxUploadSize > 0 && int64(len(data)) > u.cfg.MaxUploadSize {
		return candidate.Candidate{}, ErrFileTooLarge
	}
	if !extract.ContentTypeAllowed(contentType) {
		return candidate.Candidate{}, ErrUnsupportedFileType
	}

	text, err := extract.ResumeText(contentType, data)
	if err != nil {
		u.log.Warn("resume text extraction failed", zap.String("content_type", contentType), zap.Error(err))
		return candidate.Candidate{}, ErrInvalidInput
	}
	if strings.TrimSpace(text) == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}

	parsed, err := u.parser.ParseResume(ctx, text)
	if err != nil {
		u.log.Error("resume parsing failed", zap.Error(err))
		return candidate.Candidate{}, ErrParserUnavailable
	}

	c := candidateFromParsed(parsed)
	c.ResumeFilename = filename
	c.ResumeContentType = contentType

	created, err := u.candidates.Create(ctx, c)
	if err != nil {
		u.log.Error("store parsed candidate failed", zap.Error(err))
		return candidate.Candidate{}, ErrInternal
	}
	return created, nil
}

// ParseJobText runs LLM extraction over a job posting without storing it.
func (u *Parse) ParseJobText(ctx context.Context, text string) (parser.ParsedJob, error) {
	if u.parser == nil {
		return parser.ParsedJob{}, ErrParserUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return parser.ParsedJob{}, ErrInvalidInput
	}

	parsed, err := u.parser.ParseJob(ctx, text)
	if err != nil {
		u.log.Error("job parsing failed", zap.Error(err))
		return parser.ParsedJob{}, ErrParserUnavailable
	}
	return parsed, nil
}

func candidateFromParsed(p parser.ParsedResume) candidate.Candidate {
	c := candidate.Candidate{
		Name:        strings.TrimSpace(p.Name),
		Location:    strings.TrimSpace(p.Location),
		Email:       strings.TrimSpace(p.Email),
		Phone:       strings.TrimSpace(p.Phone),
		YearOfBirth: p.YearOfBirth,
		Education:   p.Education,
		Experience:  p.Experience,
		Languages:   p.Languages,
		Skills:      p.Skills,
	}
	if c.Name == "" {
		c.Name = "Unknown"
	}
	if c.Location == "" {
		c.Location = "Unknown"
	}
	if p.SalaryExpectation != nil {
		c.SalaryExpectation = *p.SalaryExpectation
	}
	return c
}
