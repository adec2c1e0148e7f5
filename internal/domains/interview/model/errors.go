package model

import (
	"errors"
	"net/http"
)

var (
	// ErrInterviewNotFound also covers requests that exist but fall outside
	// the caller's scope.
	ErrInterviewNotFound = errors.New("interview request not found")
	ErrArtistNotFound    = errors.New("artist not found")
)

// ToErrorCode maps domain errors to API error codes
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInterviewNotFound):
		return "INTERVIEW_REQUEST_NOT_FOUND"
	case errors.Is(err, ErrArtistNotFound):
		return "ARTIST_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps domain errors to HTTP status codes
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInterviewNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrArtistNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
