package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	authormodel "deadparty-backend/internal/domains/author/model"
	"deadparty-backend/internal/shared"
)

// ArticleResponse is the canonical read representation. Author and artists
// are embedded in full.
type ArticleResponse struct {
	ID           uuid.UUID                    `json:"id"`
	Slug         string                       `json:"slug"`
	Title        string                       `json:"title"`
	Category     shared.Genre                 `json:"category"`
	Image        *string                      `json:"image"`
	Excerpt      string                       `json:"excerpt"`
	Date         string                       `json:"date"`
	Content      string                       `json:"content"`
	IsFeatured   bool                         `json:"is_featured"`
	CommentCount int                          `json:"comment_count"`
	Author       *authormodel.AuthorResponse  `json:"author"`
	Artists      []artistmodel.ArtistResponse `json:"artists"`
	CreatedAt    time.Time                    `json:"created_at"`
	UpdatedAt    time.Time                    `json:"updated_at"`
}

func (a *Article) ToResponse() *ArticleResponse {
	resp := &ArticleResponse{
		ID:           a.ID,
		Slug:         a.Slug,
		Title:        a.Title,
		Category:     a.Category,
		Image:        a.Image,
		Excerpt:      a.Excerpt,
		Date:         a.Date.Format("2006-01-02"),
		Content:      a.Content,
		IsFeatured:   a.IsFeatured,
		CommentCount: a.CommentCount,
		Artists:      make([]artistmodel.ArtistResponse, len(a.Artists)),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.Author != nil {
		resp.Author = a.Author.ToResponse()
	}
	for i := range a.Artists {
		resp.Artists[i] = *a.Artists[i].ToResponse()
	}
	return resp
}

// WriteArticleRequest - POST /v1/admin/articles and PUT /v1/admin/articles/:id.
// Slug and timestamps are server-controlled and never accepted from clients.
type WriteArticleRequest struct {
	Title      string      `json:"title"`
	Category   string      `json:"category"`
	Image      *string     `json:"image"`
	Excerpt    string      `json:"excerpt"`
	AuthorID   *uuid.UUID  `json:"author_id"`
	Date       string      `json:"date"`
	Content    string      `json:"content"`
	ArtistIDs  []uuid.UUID `json:"artist_ids"`
	IsFeatured bool        `json:"is_featured"`
}

func (r WriteArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(shared.GenreValues()...).Error("invalid category"),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.Date,
			validation.Required.Error("date is required"),
			validation.Date("2006-01-02").Error("date must be YYYY-MM-DD"),
		),
		validation.Field(&r.Content, validation.Required.Error("content is required")),
	)
}

// ParsedDate returns the publication date; Validate must pass first.
func (r WriteArticleRequest) ParsedDate() time.Time {
	t, _ := time.Parse("2006-01-02", r.Date)
	return t
}

// ToggleFeaturedResponse - POST /v1/admin/articles/:id/toggle-featured
type ToggleFeaturedResponse struct {
	IsFeatured bool `json:"is_featured"`
}

// ArticleFilter - query parameters for GET /v1/articles
type ArticleFilter struct {
	Category string `form:"category"`
	Featured *bool  `form:"is_featured"`
	AuthorID string `form:"author"`
	ArtistID string `form:"artist"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}
