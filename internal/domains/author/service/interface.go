package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/author/model"
)

type ServiceInterface interface {
	List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error)
}
