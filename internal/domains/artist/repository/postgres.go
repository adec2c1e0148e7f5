package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"deadparty-backend/internal/domains/artist/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// article_count is computed per row from the link table.
const artistSelect = `
        SELECT a.id, a.name, a.email, a.spotify_id, a.location, a.genre, a.bio,
               a.instagram, a.twitter, a.youtube, a.tiktok, a.website, a.user_id,
               (SELECT COUNT(*) FROM article_artists aa WHERE aa.artist_id = a.id) AS article_count,
               a.created_at, a.updated_at
        FROM artists a
    `

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var a model.Artist
	err := row.Scan(
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
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ArtistFilter) ([]model.Artist, int64, error) {
	var conditions []string
	args := []interface{}{}
	argPos := 1

	if filter.Genre != "" {
		conditions = append(conditions, fmt.Sprintf("a.genre = $%d", argPos))
		args = append(args, filter.Genre)
		argPos++
	}
	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("a.location ILIKE $%d", argPos))
		args = append(args, "%"+filter.Location+"%")
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(a.name ILIKE $%d OR a.bio ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := artistSelect + where + fmt.Sprintf(" ORDER BY a.name ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating artists: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM artists a" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}

	return artists, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Artist, error) {
	a, err := scanArtist(r.pool.QueryRow(ctx, artistSelect+" WHERE a.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Artist, error) {
	a, err := scanArtist(r.pool.QueryRow(ctx, artistSelect+" WHERE a.user_id = $1", userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrArtistNotFound
		}
		return nil, fmt.Errorf("failed to get artist by user id: %w", err)
	}
	return a, nil
}
