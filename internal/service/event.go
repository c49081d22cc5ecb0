package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eventpulse/eventpulse/internal/catalog"
	"github.com/eventpulse/eventpulse/internal/domain"
	"github.com/eventpulse/eventpulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EventService owns the catalog: it pulls events from the repository into the
// in-memory store and serves filtered views off the latest snapshot.
type EventService struct {
	repo   ports.EventRepo
	store  *catalog.Store
	logger logger.Logger
}

func NewEventService(repo ports.EventRepo, store *catalog.Store, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Refresh replaces the catalog snapshot with the current repository state.
// On failure the previous snapshot stays in place, so readers see a stale
// catalog rather than an empty one.
func (s *EventService) Refresh(ctx context.Context) error {
	events, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	s.store.Replace(events)
	s.logger.LogAttrs(ctx, logger.DebugLevel, "catalog refreshed",
		logger.Int("events", len(events)),
	)

	return nil
}

// Browse returns the filtered view of the current catalog snapshot.
func (s *EventService) Browse(cfg catalog.FilterConfig) []domain.Event {
	return catalog.Filter(s.store.Snapshot(), cfg)
}

func (s *EventService) Categories() []string {
	return catalog.Categories(s.store.Snapshot())
}

func (s *EventService) Grouped() []catalog.CategoryGroup {
	return catalog.GroupByCategory(s.store.Snapshot())
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Date.Before(time.Now()) {
		return nil, fmt.Errorf("%w: date must be in the future", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:             uuid.New().String(),
		Title:          input.Title,
		Description:    input.Description,
		Date:           input.Date,
		StartTime:      input.StartTime,
		Location:       input.Location,
		Category:       input.Category,
		Price:          input.Price,
		Capacity:       input.Capacity,
		AvailableSpots: input.Capacity,
		ImageURL:       input.ImageURL,
		Organizer:      input.Organizer,
		Tags:           input.Tags,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	if err := s.Refresh(ctx); err != nil {
		s.logger.Error("catalog refresh after create failed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}

	return event, nil
}
