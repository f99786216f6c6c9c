package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionCompleted    = errors.New("session already completed")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrCelebrationNotFound = errors.New("celebration not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
	ErrProviderError       = errors.New("identity provider error")
	ErrAIUnavailable       = errors.New("ai provider unavailable")
)
