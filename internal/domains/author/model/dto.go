package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "deadparty-backend/internal/domains/user/model"
	"deadparty-backend/internal/shared"
)

// AuthorResponse is the canonical read representation.
type AuthorResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Category     shared.Genre       `json:"category"`
	Bio          *string            `json:"bio"`
	CashTag      *string            `json:"cash_tag"`
	Instagram    *string            `json:"instagram"`
	ArticleCount int                `json:"article_count"`
	User         *usermodel.Summary `json:"user"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		ID:           a.ID,
		Name:         a.Name,
		Category:     a.Category,
		Bio:          a.Bio,
		CashTag:      a.CashTag,
		Instagram:    a.Instagram,
		ArticleCount: a.ArticleCount,
		User:         a.User,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// AuthorFilter - query parameters for GET /v1/authors
type AuthorFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
