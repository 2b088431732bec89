package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrJobNotFound         = errors.New("job not found")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file too large")
	ErrParserUnavailable   = errors.New("parser unavailable")
	ErrInternal            = errors.New("internal error")
)
