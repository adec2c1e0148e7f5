package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/event/model"
	"deadparty-backend/internal/domains/event/repository"
	"deadparty-backend/internal/shared"
)

type eventService struct {
	repo repository.RepositoryInterface
	now  func() time.Time
}

func NewEventService(repo repository.RepositoryInterface) ServiceInterface {
	return &eventService{repo: repo, now: time.Now}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *eventService) List(ctx context.Context, filter model.EventFilter) ([]model.Event, int64, error) {
	filter.Limit, filter.Offset = clampPage(filter.Limit, filter.Offset)

	if filter.Genre != "" && !shared.Genre(filter.Genre).Valid() {
		return nil, 0, model.ErrInvalidGenre
	}
	if filter.Date != "" {
		if _, err := time.Parse("2006-01-02", filter.Date); err != nil {
			return nil, 0, model.ErrInvalidDate
		}
	}

	filter.Search = strings.TrimSpace(filter.Search)

	return s.repo.List(ctx, filter)
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	if id == uuid.Nil {
		return nil, model.ErrEventNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *eventService) ListUpcoming(ctx context.Context, limit, offset int) ([]model.Event, int64, error) {
	limit, offset = clampPage(limit, offset)
	return s.repo.ListUpcoming(ctx, s.now(), limit, offset)
}

func (s *eventService) ListPast(ctx context.Context, limit, offset int) ([]model.Event, int64, error) {
	limit, offset = clampPage(limit, offset)
	return s.repo.ListPast(ctx, s.now(), limit, offset)
}
