package apperr

import "errors"

// ErrInvalid is returned when a required input is missing.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")
