package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/eventpulse/eventpulse/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, date, start_time, location, category,
				price, capacity, available_spots, image_url, organizer, tags, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.Location, e.Category,
		e.Price, e.Capacity, e.AvailableSpots, e.ImageURL, e.Organizer, pq.Array(e.Tags), now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, date, start_time, location, category,
					price, capacity, available_spots, image_url, organizer, tags, created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.Location, &e.Category,
		&e.Price, &e.Capacity, &e.AvailableSpots, &e.ImageURL, &e.Organizer, pq.Array(&e.Tags),
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

// List returns the whole catalog ordered by date ascending.
func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, title, description, date, start_time, location, category,
					price, capacity, available_spots, image_url, organizer, tags, created_at, updated_at
			  FROM events
			  ORDER BY date, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.Location, &e.Category,
			&e.Price, &e.Capacity, &e.AvailableSpots, &e.ImageURL, &e.Organizer, pq.Array(&e.Tags),
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// UpdateAvailableSpots overwrites the spot counter with the caller's value.
// This is a plain read-then-write sequence from the booking workflow's point
// of view: there is no compare-and-swap, so two racing bookings can both
// win. Advisory counter, not an enforced invariant.
func (r *EventRepository) UpdateAvailableSpots(ctx context.Context, id string, spots int) error {
	query := `UPDATE events
			  SET available_spots = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, spots)
	if err != nil {
		return fmt.Errorf("update available spots: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update available spots rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
