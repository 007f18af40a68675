package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidPassword   = errors.New("invalid password")

	// Meeting errors
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrInvalidDuration   = errors.New("duration must be between 1 and 480 minutes")
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid request")
)
