package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "deadparty-backend/internal/domains/user/model"
)

// Comment belongs to one article and one user. Approved defaults to true on
// create and is only ever changed by staff moderation.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ArticleID uuid.UUID `json:"article_id" db:"article_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Approved  bool      `json:"approved" db:"approved"`

	User *usermodel.Summary `json:"user"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
