package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	artistmodel "deadparty-backend/internal/domains/artist/model"
	"deadparty-backend/internal/domains/interview/model"
	usermodel "deadparty-backend/internal/domains/user/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const interviewSelect = `
        SELECT ir.id, ir.artist_id, ir.requester_id, ir.message, ir.email_sent, ir.sms_sent,
               a.id, a.name, a.email, a.spotify_id, a.location, a.genre, a.bio,
               a.instagram, a.twitter, a.youtube, a.tiktok, a.website, a.user_id,
               (SELECT COUNT(*) FROM article_artists aa WHERE aa.artist_id = a.id),
               a.created_at, a.updated_at,
               u.id, u.username, u.email, u.first_name, u.last_name, u.date_joined,
               ir.created_at, ir.updated_at
        FROM interview_requests ir
        JOIN artists a ON a.id = ir.artist_id
        LEFT JOIN users u ON u.id = ir.requester_id
    `

func scanInterview(row pgx.Row) (*model.InterviewRequest, error) {
	var ir model.InterviewRequest
	var a artistmodel.Artist
	var usID *uuid.UUID
	var usName, usEmail, usFirst, usLast *string
	var usJoined *time.Time

	err := row.Scan(
		&ir.ID,
		&ir.ArtistID,
		&ir.RequesterID,
		&ir.Message,
		&ir.EmailSent,
		&ir.SmsSent,
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
		&usID,
		&usName,
		&usEmail,
		&usFirst,
		&usLast,
		&usJoined,
		&ir.CreatedAt,
		&ir.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ir.Artist = &a
	if usID != nil {
		ir.Requester = &usermodel.Summary{
			ID:         *usID,
			Username:   *usName,
			Email:      *usEmail,
			FirstName:  *usFirst,
			LastName:   *usLast,
			DateJoined: *usJoined,
		}
	}
	return &ir, nil
}

// scopeCondition translates a caller scope into SQL. Staff gets no filter.
func scopeCondition(scope model.Scope, argPos int) (string, []interface{}) {
	switch scope.Role {
	case model.RoleStaff:
		return "", nil
	case model.RoleArtistOwner:
		return fmt.Sprintf("ir.artist_id = $%d", argPos), []interface{}{scope.ArtistID}
	default:
		return fmt.Sprintf("ir.requester_id = $%d", argPos), []interface{}{scope.UserID}
	}
}

func (r *postgresRepository) Create(ctx context.Context, req *model.InterviewRequest) error {
	query := `
        INSERT INTO interview_requests (artist_id, requester_id, message)
        VALUES ($1, $2, $3)
        RETURNING id, email_sent, sms_sent, created_at, updated_at
    `
	err := r.pool.QueryRow(ctx, query, req.ArtistID, req.RequesterID, req.Message).
		Scan(&req.ID, &req.EmailSent, &req.SmsSent, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrArtistNotFound
		}
		return fmt.Errorf("failed to create interview request: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID, scope model.Scope) (*model.InterviewRequest, error) {
	where := " WHERE ir.id = $1"
	args := []interface{}{id}
	if cond, scopeArgs := scopeCondition(scope, 2); cond != "" {
		where += " AND " + cond
		args = append(args, scopeArgs...)
	}

	ir, err := scanInterview(r.pool.QueryRow(ctx, interviewSelect+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("failed to get interview request: %w", err)
	}
	return ir, nil
}

func (r *postgresRepository) List(ctx context.Context, scope model.Scope, limit, offset int) ([]model.InterviewRequest, int64, error) {
	where := ""
	args := []interface{}{}
	if cond, scopeArgs := scopeCondition(scope, 1); cond != "" {
		where = " WHERE " + cond
		args = append(args, scopeArgs...)
	}

	argPos := len(args) + 1
	query := interviewSelect + where + fmt.Sprintf(" ORDER BY ir.created_at DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
	pageArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.pool.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query interview requests: %w", err)
	}
	defer rows.Close()

	var requests []model.InterviewRequest
	for rows.Next() {
		ir, err := scanInterview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan interview request: %w", err)
		}
		requests = append(requests, *ir)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating interview requests: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM interview_requests ir"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count interview requests: %w", err)
	}

	return requests, total, nil
}

func (r *postgresRepository) MarkNotified(ctx context.Context, id uuid.UUID, emailSent, smsSent bool) error {
	query := "UPDATE interview_requests SET email_sent = $2, sms_sent = $3, updated_at = NOW() WHERE id = $1"
	tag, err := r.pool.Exec(ctx, query, id, emailSent, smsSent)
	if err != nil {
		return fmt.Errorf("failed to mark interview request notified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrInterviewNotFound
	}
	return nil
}
