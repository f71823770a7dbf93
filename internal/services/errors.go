package services

import "errors"

var (
	ErrResumeMissing         = errors.New("Please upload a resume first")
	ErrJobDescriptionMissing = errors.New("Please provide a job description first")
	ErrInvalidMode           = errors.New("invalid mode")
	ErrUnsupportedFile       = errors.New("unsupported file type")
	ErrNoFile                = errors.New("no file uploaded")
	ErrEmptyDocument         = errors.New("no text content found in document")
	ErrEmptyMessage          = errors.New("message is required")
)
