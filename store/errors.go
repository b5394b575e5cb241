package store

import "errors"

// Domain error kinds. Operations wrap these with a descriptive message, so
// callers match with errors.Is and display err.Error() as-is.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
)
