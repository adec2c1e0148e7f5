package model

import (
	"errors"
	"net/http"
)

var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrNoFeaturedArticle = errors.New("no featured article")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidFilter     = errors.New("invalid filter value")
	ErrAuthorNotFound    = errors.New("author not found")
	ErrArtistNotFound    = errors.New("artist not found")
	ErrDuplicateSlug     = errors.New("slug already exists")
)

// ToErrorCode maps domain errors to API error codes
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrArticleNotFound):
		return "ARTICLE_NOT_FOUND"
	case errors.Is(err, ErrNoFeaturedArticle):
		return "NO_FEATURED_ARTICLE"
	case errors.Is(err, ErrInvalidCategory):
		return "INVALID_CATEGORY"
	case errors.Is(err, ErrInvalidFilter):
		return "INVALID_FILTER"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrArtistNotFound):
		return "ARTIST_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps domain errors to HTTP status codes
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArticleNotFound), errors.Is(err, ErrNoFeaturedArticle):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrArtistNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
