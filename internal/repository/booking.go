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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, event_id, user_id, attendee_name, attendee_email, attendee_phone,
				ticket_quantity, special_requests, total_amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.EventID, b.UserID, b.AttendeeName, b.AttendeeEmail, b.AttendeePhone,
		b.TicketQuantity, nullIfEmpty(b.SpecialRequests), b.TotalAmount, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, event_id, user_id, attendee_name, attendee_email, attendee_phone,
					ticket_quantity, COALESCE(special_requests, ''), total_amount, status, created_at, updated_at
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.EventID, &b.UserID, &b.AttendeeName, &b.AttendeeEmail, &b.AttendeePhone,
		&b.TicketQuantity, &b.SpecialRequests, &b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// ListByUser returns the user's bookings, newest first, each carrying the
// event row as it was at fetch time.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.event_id, b.user_id, b.attendee_name, b.attendee_email, b.attendee_phone,
					b.ticket_quantity, COALESCE(b.special_requests, ''), b.total_amount, b.status,
					b.created_at, b.updated_at,
					e.id, e.title, e.description, e.date, e.start_time, e.location, e.category,
					e.price, e.capacity, e.available_spots, e.image_url, e.organizer, e.tags,
					e.created_at, e.updated_at
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		var e domain.Event
		if err = rows.Scan(
			&b.ID, &b.EventID, &b.UserID, &b.AttendeeName, &b.AttendeeEmail, &b.AttendeePhone,
			&b.TicketQuantity, &b.SpecialRequests, &b.TotalAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt,
			&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.Location, &e.Category,
			&e.Price, &e.Capacity, &e.AvailableSpots, &e.ImageURL, &e.Organizer, pq.Array(&e.Tags),
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		b.Event = &e
		res = append(res, &b)
	}

	return res, rows.Err()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
