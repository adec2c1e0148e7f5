package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "deadparty-backend/internal/domains/user/model"
	"deadparty-backend/internal/shared"
)

// Author is a writer profile. Every author is backed by a user account.
type Author struct {
	ID       uuid.UUID    `json:"id" db:"id"`
	UserID   uuid.UUID    `json:"user_id" db:"user_id"`
	Name     string       `json:"name" db:"name"`
	Category shared.Genre `json:"category" db:"category"`
	Bio      *string      `json:"bio" db:"bio"`
	CashTag  *string      `json:"cash_tag" db:"cash_tag"`

	// Social media links
	Instagram *string `json:"instagram" db:"instagram"`

	// Computed at query time.
	ArticleCount int `json:"article_count"`

	// Nested read-only user summary.
	User *usermodel.Summary `json:"user"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
