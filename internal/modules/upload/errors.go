package upload

import "errors"

var (
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file exceeds size limit")
	ErrInvalidType  = errors.New("file type not allowed")
)
