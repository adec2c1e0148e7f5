package model

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ToHTTPStatus maps domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateUsername):
		return 409
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	default:
		return 500
	}
}

// ToErrorCode maps domain errors to API error codes.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	case errors.Is(err, ErrDuplicateUsername):
		return "DUPLICATE_USERNAME"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	default:
		return "INTERNAL_ERROR"
	}
}
