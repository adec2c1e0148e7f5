package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"deadparty-backend/internal/domains/article/model"
	"deadparty-backend/internal/domains/article/service"
	authormodel "deadparty-backend/internal/domains/author/model"
	"deadparty-backend/internal/shared"
)

// fakeArticleRepo keeps articles in memory and mirrors the store's featured
// handling: turning a flag on clears it everywhere else first.
type fakeArticleRepo struct {
	articles map[uuid.UUID]*model.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uuid.UUID]*model.Article)}
}

func (f *fakeArticleRepo) unsetFeatured(except uuid.UUID) {
	for id, a := range f.articles {
		if id != except {
			a.IsFeatured = false
		}
	}
}

func (f *fakeArticleRepo) List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int64, error) {
	var out []model.Article
	for _, a := range f.articles {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeArticleRepo) GetFeatured(ctx context.Context) (*model.Article, error) {
	for _, a := range f.articles {
		if a.IsFeatured {
			copied := *a
			return &copied, nil
		}
	}
	return nil, model.ErrNoFeaturedArticle
}

func (f *fakeArticleRepo) Create(ctx context.Context, article *model.Article, artistIDs []uuid.UUID) error {
	article.ID = uuid.New()
	if article.IsFeatured {
		f.unsetFeatured(article.ID)
	}
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleRepo) Update(ctx context.Context, article *model.Article, artistIDs []uuid.UUID) error {
	if _, ok := f.articles[article.ID]; !ok {
		return model.ErrArticleNotFound
	}
	if article.IsFeatured {
		f.unsetFeatured(article.ID)
	}
	copied := *article
	f.articles[article.ID] = &copied
	return nil
}

func (f *fakeArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.articles[id]; !ok {
		return model.ErrArticleNotFound
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleRepo) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error) {
	a, ok := f.articles[id]
	if !ok {
		return false, model.ErrArticleNotFound
	}
	a.IsFeatured = !a.IsFeatured
	if a.IsFeatured {
		f.unsetFeatured(id)
	}
	return a.IsFeatured, nil
}

func (f *fakeArticleRepo) SetImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	a, ok := f.articles[id]
	if !ok {
		return model.ErrArticleNotFound
	}
	a.Image = &imageURL
	return nil
}

func (f *fakeArticleRepo) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	for _, a := range f.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeArticleRepo) featuredCount() int {
	n := 0
	for _, a := range f.articles {
		if a.IsFeatured {
			n++
		}
	}
	return n
}

type fakeAuthorRepo struct {
	byUser map[uuid.UUID]*authormodel.Author
}

func (f *fakeAuthorRepo) List(ctx context.Context, filter authormodel.AuthorFilter) ([]authormodel.Author, int64, error) {
	return nil, 0, nil
}

func (f *fakeAuthorRepo) GetByID(ctx context.Context, id uuid.UUID) (*authormodel.Author, error) {
	for _, a := range f.byUser {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, authormodel.ErrAuthorNotFound
}

func (f *fakeAuthorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*authormodel.Author, error) {
	a, ok := f.byUser[userID]
	if !ok {
		return nil, authormodel.ErrAuthorNotFound
	}
	return a, nil
}

type fakeUploader struct {
	keys    []string
	deleted []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.keys = append(f.keys, key)
	return "http://media.local/" + key, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeUploader) KeyFromURL(rawURL string) (string, bool) {
	const prefix = "http://media.local/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(rawURL, prefix), true
}

func writeRequest(title string, featured bool) model.WriteArticleRequest {
	return model.WriteArticleRequest{
		Title:      title,
		Category:   string(shared.GenreHardcoreRock),
		Excerpt:    "excerpt",
		Date:       "2026-06-01",
		Content:    "content",
		IsFeatured: featured,
	}
}

func newService(repo *fakeArticleRepo, authors *fakeAuthorRepo) service.ServiceInterface {
	if authors == nil {
		authors = &fakeAuthorRepo{byUser: map[uuid.UUID]*authormodel.Author{}}
	}
	return service.NewArticleService(repo, authors, &fakeUploader{})
}

func TestCreateFeaturedUnsetsPrevious(t *testing.T) {
	t.Parallel()
	repo := newFakeArticleRepo()
	svc := newService(repo, nil)
	ctx := context.Background()
	caller := uuid.New()

	first, err := svc.Create(ctx, caller, writeRequest("First", true))
	require.NoError(t, err)
	require.True(t, first.IsFeatured)

	second, err := svc.Create(ctx, caller, writeRequest("Second", true))
	require.NoError(t, err)
	require.True(t, second.IsFeatured)

	reloaded, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, reloaded.IsFeatured)
	require.Equal(t, 1, repo.featuredCount())
}

func TestToggleFeaturedKeepsSingleWinner(t *testing.T) {
	t.Parallel()
	repo := newFakeArticleRepo()
	svc := newService(repo, nil)
	ctx := context.Background()
	caller := uuid.New()

	a, err := svc.Create(ctx, caller, writeRequest("A", false))
	require.NoError(t, err)
	b, err := svc.Create(ctx, caller, writeRequest("B", false))
	require.NoError(t, err)

	on, err := svc.ToggleFeatured(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, on)

	on, err = svc.ToggleFeatured(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, on)
	require.Equal(t, 1, repo.featuredCount())

	off, err := svc.ToggleFeatured(ctx, b.ID)
	require.NoError(t, err)
	require.False(t, off)
	require.Equal(t, 0, repo.featuredCount())

	_, err = svc.GetFeatured(ctx)
	require.ErrorIs(t, err, model.ErrNoFeaturedArticle)
}

func TestCreateDerivesUniqueSlugs(t *testing.T) {
	t.Parallel()
	repo := newFakeArticleRepo()
	svc := newService(repo, nil)
	ctx := context.Background()
	caller := uuid.New()

	var slugs []string
	for i := 0; i < 3; i++ {
		a, err := svc.Create(ctx, caller, writeRequest("Hardcore Summer: 2026 Recap!", false))
		require.NoError(t, err)
		slugs = append(slugs, a.Slug)
	}

	require.Equal(t, []string{
		"hardcore-summer-2026-recap",
		"hardcore-summer-2026-recap-2",
		"hardcore-summer-2026-recap-3",
	}, slugs)
}

func TestCreatePrefersCallerAuthorProfile(t *testing.T) {
	t.Parallel()
	repo := newFakeArticleRepo()
	caller := uuid.New()
	own := &authormodel.Author{ID: uuid.New(), UserID: caller, Name: "Own Profile"}
	authors := &fakeAuthorRepo{byUser: map[uuid.UUID]*authormodel.Author{caller: own}}
	svc := newService(repo, authors)
	ctx := context.Background()

	other := uuid.New()
	req := writeRequest("Bylined", false)
	req.AuthorID = &other

	a, err := svc.Create(ctx, caller, req)
	require.NoError(t, err)
	require.NotNil(t, a.AuthorID)
	require.Equal(t, own.ID, *a.AuthorID)
}

func TestCreateRejectsBadInput(t *testing.T) {
	t.Parallel()
	svc := newService(newFakeArticleRepo(), nil)
	ctx := context.Background()

	req := writeRequest("Valid", false)
	req.Category = "polka"
	_, err := svc.Create(ctx, uuid.New(), req)
	require.Error(t, err)

	req = writeRequest("Valid", false)
	req.Date = "01-06-2026"
	_, err = svc.Create(ctx, uuid.New(), req)
	require.Error(t, err)
}

func TestUploadImageStoresURL(t *testing.T) {
	t.Parallel()
	repo := newFakeArticleRepo()
	uploader := &fakeUploader{}
	authors := &fakeAuthorRepo{byUser: map[uuid.UUID]*authormodel.Author{}}
	svc := service.NewArticleService(repo, authors, uploader)
	ctx := context.Background()

	a, err := svc.Create(ctx, uuid.New(), writeRequest("With Cover", false))
	require.NoError(t, err)

	url, err := svc.UploadImage(ctx, a.ID, "Cover Art.PNG", []byte("png"), "image/png")
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("http://media.local/articles/%s/cover-art.PNG", a.ID), url)

	reloaded, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Image)
	require.Equal(t, url, *reloaded.Image)

	// A second upload replaces the stored object.
	_, err = svc.UploadImage(ctx, a.ID, "new-cover.jpg", []byte("jpg"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, []string{fmt.Sprintf("articles/%s/cover-art.PNG", a.ID)}, uploader.deleted)

	_, err = svc.UploadImage(ctx, uuid.New(), "x.png", []byte("png"), "image/png")
	require.ErrorIs(t, err, model.ErrArticleNotFound)
}
