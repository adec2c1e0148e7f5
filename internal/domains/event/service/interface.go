package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/event/model"
)

type ServiceInterface interface {
	List(ctx context.Context, filter model.EventFilter) ([]model.Event, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListUpcoming(ctx context.Context, limit, offset int) ([]model.Event, int64, error)
	ListPast(ctx context.Context, limit, offset int) ([]model.Event, int64, error)
}
