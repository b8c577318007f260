package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrSessionExpired        = errors.New("session expired")
	ErrConflict              = errors.New("conflict")
	ErrNetworkFailure        = errors.New("network failure")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
