package model

import (
	"time"

	"github.com/google/uuid"

	"deadparty-backend/internal/shared"
)

// ArtistResponse is the canonical read representation.
type ArtistResponse struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        *string      `json:"email"`
	SpotifyID    *string      `json:"spotify_id"`
	Location     *string      `json:"location"`
	Genre        shared.Genre `json:"genre"`
	Bio          *string      `json:"bio"`
	Instagram    *string      `json:"instagram"`
	Twitter      *string      `json:"twitter"`
	YouTube      *string      `json:"youtube"`
	TikTok       *string      `json:"tiktok"`
	Website      *string      `json:"website"`
	ArticleCount int          `json:"article_count"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (a *Artist) ToResponse() *ArtistResponse {
	return &ArtistResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		SpotifyID:    a.SpotifyID,
		Location:     a.Location,
		Genre:        a.Genre,
		Bio:          a.Bio,
		Instagram:    a.Instagram,
		Twitter:      a.Twitter,
		YouTube:      a.YouTube,
		TikTok:       a.TikTok,
		Website:      a.Website,
		ArticleCount: a.ArticleCount,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ArtistFilter - query parameters for GET /v1/artists
type ArtistFilter struct {
	Genre    string `form:"genre"`
	Location string `form:"location"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
