package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/artist/model"
)

type ServiceInterface interface {
	List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Artist, error)
}
