package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	usermodel "deadparty-backend/internal/domains/user/model"
)

// CommentResponse is the canonical read representation.
type CommentResponse struct {
	ID        uuid.UUID          `json:"id"`
	ArticleID uuid.UUID          `json:"article_id"`
	Content   string             `json:"content"`
	Approved  bool               `json:"approved"`
	User      *usermodel.Summary `json:"user"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Content:   c.Content,
		Approved:  c.Approved,
		User:      c.User,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateCommentRequest - POST /v1/comments. The user comes from the token
// and approved is not accepted from clients.
type CreateCommentRequest struct {
	ArticleID uuid.UUID `json:"article_id"`
	Content   string    `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ArticleID,
			validation.Required.Error("article_id is required"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

// ModerateCommentRequest - PATCH /v1/admin/comments/:id/moderate
type ModerateCommentRequest struct {
	Approved *bool `json:"approved"`
}

func (r ModerateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Approved, validation.NotNil.Error("approved is required")),
	)
}

// CommentFilter - query parameters for comment listings.
type CommentFilter struct {
	ArticleID string `form:"article"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}
