// internal/services/errors.go
package services

import "errors"

// Sentinel errors handlers map onto HTTP statuses. Services wrap these with
// context via fmt.Errorf("...: %w", ...).
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("invalid input")
)
