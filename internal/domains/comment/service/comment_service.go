package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	articlemodel "deadparty-backend/internal/domains/article/model"
	articlerepo "deadparty-backend/internal/domains/article/repository"
	"deadparty-backend/internal/domains/comment/model"
	"deadparty-backend/internal/domains/comment/repository"
)

type commentService struct {
	repo     repository.RepositoryInterface
	articles articlerepo.RepositoryInterface
}

func NewCommentService(repo repository.RepositoryInterface, articles articlerepo.RepositoryInterface) ServiceInterface {
	return &commentService{repo: repo, articles: articles}
}

func (s *commentService) Create(ctx context.Context, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.articles.GetByID(ctx, req.ArticleID); err != nil {
		if errors.Is(err, articlemodel.ErrArticleNotFound) {
			return nil, model.ErrArticleNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		ArticleID: req.ArticleID,
		UserID:    userID,
		Content:   req.Content,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, comment.ID)
}

func (s *commentService) ListPublic(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error) {
	return s.list(ctx, filter, true)
}

func (s *commentService) ListAll(ctx context.Context, filter model.CommentFilter) ([]model.Comment, int64, error) {
	return s.list(ctx, filter, false)
}

func (s *commentService) list(ctx context.Context, filter model.CommentFilter, approvedOnly bool) ([]model.Comment, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var articleID *uuid.UUID
	if filter.ArticleID != "" {
		id, err := uuid.Parse(filter.ArticleID)
		if err != nil {
			return nil, 0, model.ErrInvalidFilter
		}
		articleID = &id
	}

	return s.repo.List(ctx, articleID, approvedOnly, filter.Limit, filter.Offset)
}

func (s *commentService) Moderate(ctx context.Context, id uuid.UUID, approved bool) (*model.Comment, error) {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
