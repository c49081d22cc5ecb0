package ports

import (
	"context"

	"github.com/eventpulse/eventpulse/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
