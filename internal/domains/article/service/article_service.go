package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"deadparty-backend/internal/domains/article/model"
	"deadparty-backend/internal/domains/article/repository"
	authormodel "deadparty-backend/internal/domains/author/model"
	authorrepo "deadparty-backend/internal/domains/author/repository"
	"deadparty-backend/internal/shared"
	"deadparty-backend/internal/shared/utils"
	"deadparty-backend/pkg/logger"
)

type articleService struct {
	repo    repository.RepositoryInterface
	authors authorrepo.RepositoryInterface
	media   MediaUploader
}

func NewArticleService(repo repository.RepositoryInterface, authors authorrepo.RepositoryInterface, media MediaUploader) ServiceInterface {
	return &articleService{repo: repo, authors: authors, media: media}
}

func (s *articleService) List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int64, error) {
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
	if filter.AuthorID != "" {
		if _, err := uuid.Parse(filter.AuthorID); err != nil {
			return nil, 0, model.ErrInvalidFilter
		}
	}
	if filter.ArtistID != "" {
		if _, err := uuid.Parse(filter.ArtistID); err != nil {
			return nil, 0, model.ErrInvalidFilter
		}
	}

	filter.Search = strings.TrimSpace(filter.Search)

	return s.repo.List(ctx, filter)
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	if id == uuid.Nil {
		return nil, model.ErrArticleNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *articleService) GetFeatured(ctx context.Context) (*model.Article, error) {
	return s.repo.GetFeatured(ctx)
}

func (s *articleService) Create(ctx context.Context, callerID uuid.UUID, req model.WriteArticleRequest) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := s.resolveAuthor(ctx, callerID, req.AuthorID)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		Slug:       slug,
		Title:      req.Title,
		Category:   shared.Genre(req.Category),
		Image:      req.Image,
		Excerpt:    req.Excerpt,
		AuthorID:   authorID,
		Date:       req.ParsedDate(),
		Content:    req.Content,
		IsFeatured: req.IsFeatured,
	}
	if err := s.repo.Create(ctx, article, req.ArtistIDs); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, article.ID)
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req model.WriteArticleRequest) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = req.Title
	existing.Category = shared.Genre(req.Category)
	existing.Image = req.Image
	existing.Excerpt = req.Excerpt
	existing.AuthorID = req.AuthorID
	existing.Date = req.ParsedDate()
	existing.Content = req.Content
	existing.IsFeatured = req.IsFeatured

	if err := s.repo.Update(ctx, existing, req.ArtistIDs); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *articleService) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ToggleFeatured(ctx, id)
}

func (s *articleService) UploadImage(ctx context.Context, id uuid.UUID, filename string, data []byte, contentType string) (string, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("articles/%s/%s", id, utils.GenerateSlug(strings.TrimSuffix(filename, path.Ext(filename)))+path.Ext(filename))
	url, err := s.media.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload article image: %w", err)
	}

	if err := s.repo.SetImage(ctx, id, url); err != nil {
		return "", err
	}

	// Replaced media is cleaned up best-effort.
	if existing.Image != nil && *existing.Image != url {
		if oldKey, ok := s.media.KeyFromURL(*existing.Image); ok {
			if err := s.media.Delete(ctx, oldKey); err != nil {
				logger.Error("failed to delete replaced article image", err)
			}
		}
	}
	return url, nil
}

// resolveAuthor prefers the caller's own author profile; a request-supplied
// author id only sticks when the caller has no profile.
func (s *articleService) resolveAuthor(ctx context.Context, callerID uuid.UUID, requested *uuid.UUID) (*uuid.UUID, error) {
	own, err := s.authors.GetByUserID(ctx, callerID)
	if err == nil {
		return &own.ID, nil
	}
	if !errors.Is(err, authormodel.ErrAuthorNotFound) {
		return nil, err
	}
	return requested, nil
}

// uniqueSlug derives a slug from the title, appending -2, -3, ... until free.
func (s *articleService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := utils.GenerateSlug(title)
	if base == "" {
		base = "article"
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.repo.ExistsSlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
