package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/artist/model"
	"deadparty-backend/internal/domains/artist/repository"
	"deadparty-backend/internal/shared"
)

type artistService struct {
	repo repository.RepositoryInterface
}

func NewArtistService(repo repository.RepositoryInterface) ServiceInterface {
	return &artistService{repo: repo}
}

func (s *artistService) List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if filter.Genre != "" && !shared.Genre(filter.Genre).Valid() {
		return nil, 0, model.ErrInvalidGenre
	}

	filter.Search = strings.TrimSpace(filter.Search)

	return s.repo.List(ctx, filter)
}

func (s *artistService) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	if id == uuid.Nil {
		return nil, model.ErrArtistNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *artistService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Artist, error) {
	return s.repo.GetByUserID(ctx, userID)
}
