package model

import (
	"time"

	"github.com/google/uuid"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	authormodel "deadparty-backend/internal/domains/author/model"
	"deadparty-backend/internal/shared"
)

// Article is a published piece. Slug is derived from the title on create and
// never changes afterwards. At most one article site-wide carries
// is_featured=true; the repository enforces that inside a transaction.
type Article struct {
	ID         uuid.UUID    `json:"id" db:"id"`
	Slug       string       `json:"slug" db:"slug"`
	Title      string       `json:"title" db:"title"`
	Category   shared.Genre `json:"category" db:"category"`
	Image      *string      `json:"image" db:"image"`
	Excerpt    string       `json:"excerpt" db:"excerpt"`
	AuthorID   *uuid.UUID   `json:"author_id" db:"author_id"`
	Date       time.Time    `json:"date" db:"date"`
	Content    string       `json:"content" db:"content"`
	IsFeatured bool         `json:"is_featured" db:"is_featured"`

	// Computed: approved comments only.
	CommentCount int `json:"comment_count"`

	// Loaded relations.
	Author  *authormodel.Author  `json:"author"`
	Artists []artistmodel.Artist `json:"artists"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
