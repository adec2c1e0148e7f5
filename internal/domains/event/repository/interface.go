package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/event/model"
)

type RepositoryInterface interface {
	List(ctx context.Context, filter model.EventFilter) ([]model.Event, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListUpcoming(ctx context.Context, today time.Time, limit, offset int) ([]model.Event, int64, error)
	ListPast(ctx context.Context, today time.Time, limit, offset int) ([]model.Event, int64, error)
}
