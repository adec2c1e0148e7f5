package model

import (
	"errors"
	"net/http"
)

var (
	ErrAuthorNotFound  = errors.New("author not found")
	ErrInvalidCategory = errors.New("invalid category")
)

// ToErrorCode maps domain errors to API error codes
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidCategory):
		return "INVALID_CATEGORY"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps domain errors to HTTP status codes
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCategory):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
