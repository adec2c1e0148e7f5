package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"deadparty-backend/internal/domains/comment/model"
	usermodel "deadparty-backend/internal/domains/user/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const commentSelect = `
        SELECT c.id, c.article_id, c.user_id, c.content, c.approved,
               u.id, u.username, u.email, u.first_name, u.last_name, u.date_joined,
               c.created_at, c.updated_at
        FROM comments c
        JOIN users u ON u.id = c.user_id
    `

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	var u usermodel.Summary
	err := row.Scan(
		&c.ID,
		&c.ArticleID,
		&c.UserID,
		&c.Content,
		&c.Approved,
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.DateJoined,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.User = &u
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
        INSERT INTO comments (article_id, user_id, content, approved)
        VALUES ($1, $2, $3, true)
        RETURNING id, approved, created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, query, comment.ArticleID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.Approved, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrArticleNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	c, err := scanComment(r.pool.QueryRow(ctx, commentSelect+" WHERE c.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, articleID *uuid.UUID, approvedOnly bool, limit, offset int) ([]model.Comment, int64, error) {
	var conditions []string
	args := []interface{}{}
	argPos := 1

	if articleID != nil {
		conditions = append(conditions, fmt.Sprintf("c.article_id = $%d", argPos))
		args = append(args, *articleID)
		argPos++
	}
	if approvedOnly {
		conditions = append(conditions, "c.approved")
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := commentSelect + where + fmt.Sprintf(" ORDER BY c.created_at ASC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating comments: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM comments c"+where, args[:len(args)-2]...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return comments, total, nil
}

func (r *postgresRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	tag, err := r.pool.Exec(ctx, "UPDATE comments SET approved = $2, updated_at = NOW() WHERE id = $1", id, approved)
	if err != nil {
		return fmt.Errorf("failed to moderate comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}
