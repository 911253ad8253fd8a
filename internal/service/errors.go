package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Lookup Errors =====
var (
	ErrGameTypeNotFound   = errors.New("game type not found")
	ErrGamerNotFound      = errors.New("gamer not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrAttendanceNotFound = errors.New("gamer is not attending this event")
)

// ===== Conflict Errors =====
var (
	ErrAlreadySignedUp = errors.New("gamer already signed up for this event")
	ErrGamerExists     = errors.New("a gamer with this uid already exists")
)
