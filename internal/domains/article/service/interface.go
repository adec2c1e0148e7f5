package service

import (
	"context"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/article/model"
)

// MediaUploader is the slice of the object store the article service needs.
type MediaUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(rawURL string) (string, bool)
}

type ServiceInterface interface {
	List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	GetFeatured(ctx context.Context) (*model.Article, error)
	Create(ctx context.Context, callerID uuid.UUID, req model.WriteArticleRequest) (*model.Article, error)
	Update(ctx context.Context, id uuid.UUID, req model.WriteArticleRequest) (*model.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error)
	UploadImage(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (string, error)
}
