package domain

import "errors"

// Domain errors (no external dependencies). Infrastructure failures are
// wrapped with %w and surface as generic store errors to the caller.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrStartupNotFound = errors.New("startup not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrScoreOutOfRange = errors.New("score outside the allowed range")
	ErrDuplicate       = errors.New("duplicate resource")
	ErrUsernameTaken   = errors.New("username already registered")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("access denied")
	ErrConflict        = errors.New("conflict with current state")
	ErrMasterLocked    = errors.New("startup master is locked")
	ErrEmptyBatch      = errors.New("no valid startup records in upload")
)
