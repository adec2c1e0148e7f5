package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"deadparty-backend/internal/domains/article/model"
	artistmodel "deadparty-backend/internal/domains/artist/model"
	authormodel "deadparty-backend/internal/domains/author/model"
	usermodel "deadparty-backend/internal/domains/user/model"
	"deadparty-backend/internal/shared"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// comment_count only counts approved comments. The author and its user row
// come in on a LEFT JOIN because author_id is nullable.
const articleSelect = `
        SELECT ar.id, ar.slug, ar.title, ar.category, ar.image, ar.excerpt, ar.author_id,
               ar.date, ar.content, ar.is_featured,
               (SELECT COUNT(*) FROM comments c WHERE c.article_id = ar.id AND c.approved) AS comment_count,
               au.id, au.user_id, au.name, au.category, au.bio, au.cash_tag, au.instagram,
               (SELECT COUNT(*) FROM articles a2 WHERE a2.author_id = au.id),
               u.id, u.username, u.email, u.first_name, u.last_name, u.date_joined,
               au.created_at, au.updated_at,
               ar.created_at, ar.updated_at
        FROM articles ar
        LEFT JOIN authors au ON au.id = ar.author_id
        LEFT JOIN users u ON u.id = au.user_id
    `

func scanArticle(row pgx.Row) (*model.Article, error) {
	var ar model.Article
	var au authormodel.Author
	var us usermodel.Summary
	var auID *uuid.UUID
	var auUserID, usID *uuid.UUID
	var auName *string
	var auCategory *shared.Genre
	var auCount *int
	var usName, usEmail, usFirst, usLast *string
	var usJoined, auCreated, auUpdated *time.Time

	err := row.Scan(
		&ar.ID,
		&ar.Slug,
		&ar.Title,
		&ar.Category,
		&ar.Image,
		&ar.Excerpt,
		&ar.AuthorID,
		&ar.Date,
		&ar.Content,
		&ar.IsFeatured,
		&ar.CommentCount,
		&auID,
		&auUserID,
		&auName,
		&auCategory,
		&au.Bio,
		&au.CashTag,
		&au.Instagram,
		&auCount,
		&usID,
		&usName,
		&usEmail,
		&usFirst,
		&usLast,
		&usJoined,
		&auCreated,
		&auUpdated,
		&ar.CreatedAt,
		&ar.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if auID != nil {
		au.ID = *auID
		au.UserID = *auUserID
		au.Name = *auName
		au.Category = *auCategory
		au.ArticleCount = *auCount
		au.CreatedAt = *auCreated
		au.UpdatedAt = *auUpdated
		if usID != nil {
			us.ID = *usID
			us.Username = *usName
			us.Email = *usEmail
			us.FirstName = *usFirst
			us.LastName = *usLast
			us.DateJoined = *usJoined
			au.User = &us
		}
		ar.Author = &au
	}
	ar.Artists = []artistmodel.Artist{}
	return &ar, nil
}

// loadArtists fills Artists on each article in one extra round trip.
func (r *postgresRepository) loadArtists(ctx context.Context, articles []*model.Article) error {
	if len(articles) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(articles))
	byID := make(map[uuid.UUID]*model.Article, len(articles))
	for i, ar := range articles {
		ids[i] = ar.ID
		byID[ar.ID] = ar
	}

	query := `
        SELECT aa.article_id, a.id, a.name, a.email, a.spotify_id, a.location, a.genre, a.bio,
               a.instagram, a.twitter, a.youtube, a.tiktok, a.website, a.user_id,
               (SELECT COUNT(*) FROM article_artists x WHERE x.artist_id = a.id),
               a.created_at, a.updated_at
        FROM article_artists aa
        JOIN artists a ON a.id = aa.artist_id
        WHERE aa.article_id = ANY($1)
        ORDER BY a.name ASC
    `
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query article artists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var articleID uuid.UUID
		var a artistmodel.Artist
		err := rows.Scan(
			&articleID,
			&a.ID,
			&a.Name,
			&a.Email,
			&a.SpotifyID,
			&a.Location,
			&a.Genre,
			&a.Bio,
			&a.Instagram,
			&a.Twitter,
			&a.YouTube,
			&a.TikTok,
			&a.Website,
			&a.UserID,
			&a.ArticleCount,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to scan article artist: %w", err)
		}
		if ar, ok := byID[articleID]; ok {
			ar.Artists = append(ar.Artists, a)
		}
	}
	return rows.Err()
}

func (r *postgresRepository) List(ctx context.Context, filter model.ArticleFilter) ([]model.Article, int64, error) {
	var conditions []string
	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("ar.category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Featured != nil {
		conditions = append(conditions, fmt.Sprintf("ar.is_featured = $%d", argPos))
		args = append(args, *filter.Featured)
		argPos++
	}
	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("ar.author_id = $%d", argPos))
		args = append(args, filter.AuthorID)
		argPos++
	}
	if filter.ArtistID != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM article_artists aa WHERE aa.article_id = ar.id AND aa.artist_id = $%d)", argPos))
		args = append(args, filter.ArtistID)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(ar.title ILIKE $%d OR ar.excerpt ILIKE $%d OR ar.content ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := articleSelect + where + fmt.Sprintf(" ORDER BY ar.date DESC, ar.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		ar, err := scanArticle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating articles: %w", err)
	}

	if err := r.loadArtists(ctx, articles); err != nil {
		return nil, 0, err
	}

	countQuery := "SELECT COUNT(*) FROM articles ar" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	out := make([]model.Article, len(articles))
	for i, ar := range articles {
		out[i] = *ar
	}
	return out, total, nil
}

func (r *postgresRepository) getOne(ctx context.Context, where string, arg interface{}) (*model.Article, error) {
	var row pgx.Row
	if arg != nil {
		row = r.pool.QueryRow(ctx, articleSelect+where, arg)
	} else {
		row = r.pool.QueryRow(ctx, articleSelect+where)
	}
	ar, err := scanArticle(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadArtists(ctx, []*model.Article{ar}); err != nil {
		return nil, err
	}
	return ar, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	ar, err := r.getOne(ctx, " WHERE ar.id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}
	return ar, nil
}

func (r *postgresRepository) GetFeatured(ctx context.Context) (*model.Article, error) {
	ar, err := r.getOne(ctx, " WHERE ar.is_featured = true", nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoFeaturedArticle
		}
		return nil, fmt.Errorf("failed to get featured article: %w", err)
	}
	return ar, nil
}

func (r *postgresRepository) Create(ctx context.Context, article *model.Article, artistIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Only one article may be featured at a time.
	if article.IsFeatured {
		if _, err := tx.Exec(ctx, "UPDATE articles SET is_featured = false WHERE is_featured"); err != nil {
			return fmt.Errorf("failed to unset featured articles: %w", err)
		}
	}

	query := `
        INSERT INTO articles (slug, title, category, image, excerpt, author_id, date, content, is_featured)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at
    `
	err = tx.QueryRow(ctx, query,
		article.Slug,
		article.Title,
		article.Category,
		article.Image,
		article.Excerpt,
		article.AuthorID,
		article.Date,
		article.Content,
		article.IsFeatured,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return translateWriteError(err)
	}

	if err := insertArtistLinks(ctx, tx, article.ID, artistIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, article *model.Article, artistIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if article.IsFeatured {
		if _, err := tx.Exec(ctx, "UPDATE articles SET is_featured = false WHERE is_featured AND id <> $1", article.ID); err != nil {
			return fmt.Errorf("failed to unset featured articles: %w", err)
		}
	}

	query := `
        UPDATE articles
        SET title = $2, category = $3, image = $4, excerpt = $5, author_id = $6,
            date = $7, content = $8, is_featured = $9, updated_at = NOW()
        WHERE id = $1
        RETURNING updated_at
    `
	err = tx.QueryRow(ctx, query,
		article.ID,
		article.Title,
		article.Category,
		article.Image,
		article.Excerpt,
		article.AuthorID,
		article.Date,
		article.Content,
		article.IsFeatured,
	).Scan(&article.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrArticleNotFound
		}
		return translateWriteError(err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM article_artists WHERE article_id = $1", article.ID); err != nil {
		return fmt.Errorf("failed to clear artist links: %w", err)
	}
	if err := insertArtistLinks(ctx, tx, article.ID, artistIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

// ToggleFeatured flips is_featured under a row lock. Turning it on unsets
// every other article first, inside the same transaction.
func (r *postgresRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var current bool
	err = tx.QueryRow(ctx, "SELECT is_featured FROM articles WHERE id = $1 FOR UPDATE", id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, model.ErrArticleNotFound
		}
		return false, fmt.Errorf("failed to lock article: %w", err)
	}

	next := !current
	if next {
		if _, err := tx.Exec(ctx, "UPDATE articles SET is_featured = false WHERE is_featured AND id <> $1", id); err != nil {
			return false, fmt.Errorf("failed to unset featured articles: %w", err)
		}
	}
	if _, err := tx.Exec(ctx, "UPDATE articles SET is_featured = $2, updated_at = NOW() WHERE id = $1", id, next); err != nil {
		return false, fmt.Errorf("failed to toggle featured: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return next, nil
}

func (r *postgresRepository) SetImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	tag, err := r.pool.Exec(ctx, "UPDATE articles SET image = $2, updated_at = NOW() WHERE id = $1", id, imageURL)
	if err != nil {
		return fmt.Errorf("failed to set article image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrArticleNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsSlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1)", slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

func insertArtistLinks(ctx context.Context, tx pgx.Tx, articleID uuid.UUID, artistIDs []uuid.UUID) error {
	for _, artistID := range artistIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO article_artists (article_id, artist_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			articleID, artistID)
		if err != nil {
			return translateWriteError(err)
		}
	}
	return nil
}

func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return model.ErrDuplicateSlug
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "artist") {
				return model.ErrArtistNotFound
			}
			return model.ErrAuthorNotFound
		}
	}
	return fmt.Errorf("failed to write article: %w", err)
}
