package testimonial

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrBadStatus  = errors.New("invalid moderation status")
)
