package services

import "errors"

// Sentinel errors handlers translate to HTTP statuses.
var (
	// ErrValidation marks a missing or malformed required field: 400.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound: 404.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthorized marks an ownership violation: 403.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidCredentials: 401.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
