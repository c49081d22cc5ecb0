package ports

import (
	"context"

	"github.com/eventpulse/eventpulse/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, event *domain.Event)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, event *domain.Event)
}
