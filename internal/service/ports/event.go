package ports

import (
	"context"

	"github.com/eventpulse/eventpulse/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	UpdateAvailableSpots(ctx context.Context, id string, spots int) error
}
