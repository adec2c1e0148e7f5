package repository

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/article/model"
)

type RepositoryInterface interface {
	List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	GetFeatured(ctx context.Context) (*model.Article, error)
	Create(ctx context.Context, article *model.Article, artistIDs []uuid.UUID) error
	Update(ctx context.Context, article *model.Article, artistIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error)
	SetImage(ctx context.Context, id uuid.UUID, imageURL string) error
	ExistsSlug(ctx context.Context, slug string) (bool, error)
}
