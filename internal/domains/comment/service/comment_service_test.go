package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	articlemodel "deadparty-backend/internal/domains/article/model"
	"deadparty-backend/internal/domains/comment/model"
	"deadparty-backend/internal/domains/comment/service"
)

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
	seq      int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*model.Comment)}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *model.Comment) error {
	comment.ID = uuid.New()
	comment.Approved = true
	f.seq++
	comment.CreatedAt = time.Unix(int64(f.seq), 0)
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCommentRepo) List(ctx context.Context, articleID *uuid.UUID, approvedOnly bool, limit, offset int) ([]model.Comment, int64, error) {
	var out []model.Comment
	for _, c := range f.comments {
		if articleID != nil && c.ArticleID != *articleID {
			continue
		}
		if approvedOnly && !c.Approved {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (f *fakeCommentRepo) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	c, ok := f.comments[id]
	if !ok {
		return model.ErrCommentNotFound
	}
	c.Approved = approved
	return nil
}

// existsArticleRepo satisfies just enough of the article repository for the
// comment service's existence check.
type existsArticleRepo struct {
	ids map[uuid.UUID]bool
}

func (f *existsArticleRepo) List(ctx context.Context, filter articlemodel.ArticleFilter) ([]articlemodel.Article, int64, error) {
	return nil, 0, nil
}

func (f *existsArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*articlemodel.Article, error) {
	if !f.ids[id] {
		return nil, articlemodel.ErrArticleNotFound
	}
	return &articlemodel.Article{ID: id}, nil
}

func (f *existsArticleRepo) GetFeatured(ctx context.Context) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrNoFeaturedArticle
}

func (f *existsArticleRepo) Create(ctx context.Context, article *articlemodel.Article, artistIDs []uuid.UUID) error {
	return nil
}

func (f *existsArticleRepo) Update(ctx context.Context, article *articlemodel.Article, artistIDs []uuid.UUID) error {
	return nil
}

func (f *existsArticleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *existsArticleRepo) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

func (f *existsArticleRepo) SetImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return nil
}

func (f *existsArticleRepo) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

func newCommentService(articleIDs ...uuid.UUID) (service.ServiceInterface, *fakeCommentRepo) {
	articles := &existsArticleRepo{ids: map[uuid.UUID]bool{}}
	for _, id := range articleIDs {
		articles.ids[id] = true
	}
	repo := newFakeCommentRepo()
	return service.NewCommentService(repo, articles), repo
}

func TestCreateCommentIsApprovedByDefault(t *testing.T) {
	t.Parallel()
	articleID := uuid.New()
	svc, _ := newCommentService(articleID)

	c, err := svc.Create(context.Background(), uuid.New(), model.CreateCommentRequest{
		ArticleID: articleID,
		Content:   "  great read  ",
	})
	require.NoError(t, err)
	require.True(t, c.Approved)
	require.Equal(t, "great read", c.Content)
}

func TestCreateCommentUnknownArticle(t *testing.T) {
	t.Parallel()
	svc, _ := newCommentService()

	_, err := svc.Create(context.Background(), uuid.New(), model.CreateCommentRequest{
		ArticleID: uuid.New(),
		Content:   "hello",
	})
	require.ErrorIs(t, err, model.ErrArticleNotFound)
}

func TestPublicListHidesUnapproved(t *testing.T) {
	t.Parallel()
	articleID := uuid.New()
	svc, _ := newCommentService(articleID)
	ctx := context.Background()

	first, err := svc.Create(ctx, uuid.New(), model.CreateCommentRequest{ArticleID: articleID, Content: "first"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, uuid.New(), model.CreateCommentRequest{ArticleID: articleID, Content: "second"})
	require.NoError(t, err)

	_, err = svc.Moderate(ctx, second.ID, false)
	require.NoError(t, err)

	public, total, err := svc.ListPublic(ctx, model.CommentFilter{ArticleID: articleID.String()})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, first.ID, public[0].ID)

	all, total, err := svc.ListAll(ctx, model.CommentFilter{ArticleID: articleID.String()})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	// Oldest first.
	require.Equal(t, first.ID, all[0].ID)
	require.Equal(t, second.ID, all[1].ID)
}

func TestModerateRoundTrip(t *testing.T) {
	t.Parallel()
	articleID := uuid.New()
	svc, _ := newCommentService(articleID)
	ctx := context.Background()

	c, err := svc.Create(ctx, uuid.New(), model.CreateCommentRequest{ArticleID: articleID, Content: "spam?"})
	require.NoError(t, err)

	moderated, err := svc.Moderate(ctx, c.ID, false)
	require.NoError(t, err)
	require.False(t, moderated.Approved)

	moderated, err = svc.Moderate(ctx, c.ID, true)
	require.NoError(t, err)
	require.True(t, moderated.Approved)

	_, err = svc.Moderate(ctx, uuid.New(), true)
	require.ErrorIs(t, err, model.ErrCommentNotFound)
}

func TestListRejectsBadArticleFilter(t *testing.T) {
	t.Parallel()
	svc, _ := newCommentService()

	_, _, err := svc.ListPublic(context.Background(), model.CommentFilter{ArticleID: "not-a-uuid"})
	require.ErrorIs(t, err, model.ErrInvalidFilter)
}
