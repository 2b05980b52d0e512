package entity

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnavailable     = errors.New("service unavailable")
)

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrPINNotConfigured = errors.New("pin not configured")
	ErrTooManyAttempts  = errors.New("too many attempts")
)

var (
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrTimerNotStarted     = errors.New("timer not started")
	ErrTimerAlreadyStopped = errors.New("timer already stopped")
)

var (
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPIN           = errors.New("pin must be 4 to 6 digits")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPhone         = errors.New("invalid phone")
	ErrInvalidMediaType     = errors.New("invalid media type")
	ErrInvalidAdjustment    = errors.New("invalid price adjustment")
	ErrSearchQueryTooShort  = errors.New("search query must be at least 2 characters")
	ErrStatusNotAllowed     = errors.New("status not allowed")
	ErrInstallationNotOwned = errors.New("installation not assigned to technician")
)
