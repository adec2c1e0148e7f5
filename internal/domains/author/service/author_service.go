package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/author/model"
	"deadparty-backend/internal/domains/author/repository"
	"deadparty-backend/internal/shared"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if filter.Category != "" && !shared.Genre(filter.Category).Valid() {
		return nil, 0, model.ErrInvalidCategory
	}

	filter.Search = strings.TrimSpace(filter.Search)

	return s.repo.List(ctx, filter)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	return s.repo.GetByUserID(ctx, userID)
}
