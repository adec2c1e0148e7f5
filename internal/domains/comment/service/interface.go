package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error)
	// ListPublic returns approved comments only, oldest first.
	ListPublic(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error)
	// ListAll includes unapproved comments; staff only.
	ListAll(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error)
	Moderate(ctx context.Context, id uuid.UUID, approved bool) (*model.Comment, error)
}
