package repository

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/comment/model"
)

type RepositoryInterface interface {
	// Create persists the comment; approved is always true at this point.
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	// List returns comments oldest first. approvedOnly hides unmoderated
	// content from the public listing.
	List(ctx context.Context, articleID *uuid.UUID, approvedOnly bool, limit, offset int) ([]model.Comment, int64, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}
