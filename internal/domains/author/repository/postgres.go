package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"deadparty-backend/internal/domains/author/model"
	usermodel "deadparty-backend/internal/domains/user/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Authors always join their user account; article_count counts articles
// credited to the author.
const authorSelect = `
        SELECT au.id, au.user_id, au.name, au.category, au.bio, au.cash_tag, au.instagram,
               (SELECT COUNT(*) FROM articles ar WHERE ar.author_id = au.id) AS article_count,
               u.id, u.username, u.email, u.first_name, u.last_name, u.date_joined,
               au.created_at, au.updated_at
        FROM authors au
        JOIN users u ON u.id = au.user_id
    `

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	var u usermodel.Summary
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Category,
		&a.Bio,
		&a.CashTag,
		&a.Instagram,
		&a.ArticleCount,
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.DateJoined,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.User = &u
	return &a, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	var conditions []string
	args := []interface{}{}
	argPos := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("au.category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(au.name ILIKE $%d OR au.bio ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := authorSelect + where + fmt.Sprintf(" ORDER BY au.name ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	countQuery := "SELECT COUNT(*) FROM authors au" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx, authorSelect+" WHERE au.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx, authorSelect+" WHERE au.user_id = $1", userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by user id: %w", err)
	}
	return a, nil
}
