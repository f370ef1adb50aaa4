package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidArgument indicates that a caller passed a value outside the accepted range.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIllegalState indicates an operation was attempted after the window for it closed.
var ErrIllegalState = errors.New("illegal state")
