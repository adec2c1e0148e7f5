package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"deadparty-backend/internal/domains/event/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const eventSelect = `
        SELECT e.id, e.title, e.artist, e.date, e.time, e.venue, e.location, e.genre,
               e.flyer, e.doors, e.ticket_url, e.description, e.created_at, e.updated_at
        FROM events e
    `

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Artist,
		&e.Date,
		&e.Time,
		&e.Venue,
		&e.Location,
		&e.Genre,
		&e.Flyer,
		&e.Doors,
		&e.TicketURL,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) queryPage(ctx context.Context, where, orderBy string, args []interface{}, limit, offset int) ([]model.Event, int64, error) {
	argPos := len(args) + 1
	query := eventSelect + where + fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, argPos, argPos+1)
	pageArgs := append(append([]interface{}{}, args...), limit, offset)

	rows, err := r.pool.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating events: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM events e"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	return events, total, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.EventFilter) ([]model.Event, int64, error) {
	var conditions []string
	args := []interface{}{}
	argPos := 1

	if filter.Genre != "" {
		conditions = append(conditions, fmt.Sprintf("e.genre = $%d", argPos))
		args = append(args, filter.Genre)
		argPos++
	}
	if filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("e.date = $%d", argPos))
		args = append(args, filter.Date)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(e.title ILIKE $%d OR e.artist ILIKE $%d OR e.venue ILIKE $%d OR e.location ILIKE $%d)",
			argPos, argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	return r.queryPage(ctx, where, "e.date ASC, e.time ASC NULLS LAST", args, filter.Limit, filter.Offset)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	e, err := scanEvent(r.pool.QueryRow(ctx, eventSelect+" WHERE e.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return e, nil
}

// Upcoming includes today; past is strictly before today.
func (r *postgresRepository) ListUpcoming(ctx context.Context, today time.Time, limit, offset int) ([]model.Event, int64, error) {
	return r.queryPage(ctx, " WHERE e.date >= $1", "e.date ASC, e.time ASC NULLS LAST",
		[]interface{}{today.Format("2006-01-02")}, limit, offset)
}

func (r *postgresRepository) ListPast(ctx context.Context, today time.Time, limit, offset int) ([]model.Event, int64, error) {
	return r.queryPage(ctx, " WHERE e.date < $1", "e.date DESC, e.time ASC NULLS LAST",
		[]interface{}{today.Format("2006-01-02")}, limit, offset)
}
