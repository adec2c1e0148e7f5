package model

import (
	"errors"
	"net/http"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidGenre  = errors.New("invalid genre")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// ToErrorCode maps domain errors to API error codes
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "EVENT_NOT_FOUND"
	case errors.Is(err, ErrInvalidGenre):
		return "INVALID_GENRE"
	case errors.Is(err, ErrInvalidDate):
		return "INVALID_DATE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps domain errors to HTTP status codes
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidGenre), errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
