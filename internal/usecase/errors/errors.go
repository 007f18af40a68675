package errors

import "errors"

// Common errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("resource not found")
	ErrInternalError     = errors.New("internal server error")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyUsed   = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
)

// Meeting errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrAlreadySummarized  = errors.New("meeting has already been summarized")
	ErrTranscriptRequired = errors.New("meeting transcript is required for summarization")
)

// Task errors
var (
	ErrTaskNotFound = errors.New("task not found")
)
