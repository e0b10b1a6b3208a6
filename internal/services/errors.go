package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes; repositories never return them directly.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("operation not permitted")
	ErrValidation         = errors.New("invalid input")
	ErrNoRoomAssigned     = errors.New("no room assigned")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimited        = errors.New("too many attempts")
)
