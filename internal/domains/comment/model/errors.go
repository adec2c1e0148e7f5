package model

import (
	"errors"
	"net/http"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrArticleNotFound = errors.New("article not found")
	ErrInvalidFilter   = errors.New("invalid filter value")
)

// ToErrorCode maps domain errors to API error codes
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		return "COMMENT_NOT_FOUND"
	case errors.Is(err, ErrArticleNotFound):
		return "ARTICLE_NOT_FOUND"
	case errors.Is(err, ErrInvalidFilter):
		return "INVALID_FILTER"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps domain errors to HTTP status codes
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCommentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrArticleNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidFilter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
