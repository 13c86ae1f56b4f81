package upload

import "errors"

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
	ErrEmptyFile       = errors.New("file is empty")
	ErrInvalidPath     = errors.New("path is outside the uploads directory")
)
