package model

import (
	"time"

	"github.com/google/uuid"

	"deadparty-backend/internal/shared"
)

// Artist is a musician covered by the site. Optionally linked to a user
// account for dashboard access and SMS notifications.
type Artist struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Email     *string      `json:"email" db:"email"`
	SpotifyID *string      `json:"spotify_id" db:"spotify_id"`
	Location  *string      `json:"location" db:"location"`
	Genre     shared.Genre `json:"genre" db:"genre"`
	Bio       *string      `json:"bio" db:"bio"`

	// Social media links
	Instagram *string `json:"instagram" db:"instagram"`
	Twitter   *string `json:"twitter" db:"twitter"`
	YouTube   *string `json:"youtube" db:"youtube"`
	TikTok    *string `json:"tiktok" db:"tiktok"`
	Website   *string `json:"website" db:"website"`

	UserID *uuid.UUID `json:"user_id,omitempty" db:"user_id"`

	// Number of linked articles, computed at query time.
	ArticleCount int `json:"article_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
