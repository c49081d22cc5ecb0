package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventpulse/eventpulse/internal/domain"
	"github.com/eventpulse/eventpulse/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type catalogRefresher interface {
	Refresh(ctx context.Context) error
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	notifier    ports.BookingNotifier
	catalog     catalogRefresher
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	notifier ports.BookingNotifier,
	catalog catalogRefresher,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		catalog:     catalog,
		logger:      logger,
	}
}

// Submit runs one booking attempt: validate, persist the booking as
// confirmed, then decrement the event's available spots. The two writes are
// independent calls with no transaction between them; two racing submissions
// can both pass validation against the same spot count. That mirrors the
// advisory nature of available_spots and is deliberate.
func (s *BookingService) Submit(ctx context.Context, userID string, req domain.BookingRequest) (*domain.Booking, error) {
	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if verr := validateBookingRequest(req, event.AvailableSpots); len(verr) > 0 {
		return nil, verr
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		EventID:         event.ID,
		UserID:          userID,
		AttendeeName:    req.AttendeeName,
		AttendeeEmail:   req.AttendeeEmail,
		AttendeePhone:   req.AttendeePhone,
		TicketQuantity:  req.TicketQuantity,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     float64(req.TicketQuantity) * event.Price,
		Status:          domain.BookingStatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err = s.eventRepo.UpdateAvailableSpots(ctx, event.ID, event.AvailableSpots-req.TicketQuantity); err != nil {
		// The booking row already exists at this point; the spot counter is
		// left untouched and the caller sees the failure.
		return nil, fmt.Errorf("update available spots: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", userID),
		logger.Int("tickets", req.TicketQuantity),
	)

	if err = s.catalog.Refresh(ctx); err != nil {
		s.logger.Error("catalog refresh after booking failed",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, event)

	return booking, nil
}

// Cancel flips a confirmed booking owned by userID to cancelled. One-way:
// cancelled bookings stay cancelled, and the event's spots are not restored.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return domain.ErrNotBookingOwner
	}

	if booking.Status != domain.BookingStatusConfirmed {
		return domain.ErrBookingNotCancelable
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("user_id", userID),
	)

	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for cancel notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, event)

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func validateBookingRequest(req domain.BookingRequest, availableSpots int) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	if strings.TrimSpace(req.AttendeeName) == "" {
		errs["attendee_name"] = "name is required"
	}

	switch {
	case strings.TrimSpace(req.AttendeeEmail) == "":
		errs["attendee_email"] = "email is required"
	case !emailShape.MatchString(req.AttendeeEmail):
		errs["attendee_email"] = "please enter a valid email"
	}

	if strings.TrimSpace(req.AttendeePhone) == "" {
		errs["attendee_phone"] = "phone number is required"
	}

	switch {
	case req.TicketQuantity < 1:
		errs["ticket_quantity"] = "at least 1 ticket is required"
	case req.TicketQuantity > availableSpots:
		errs["ticket_quantity"] = fmt.Sprintf("only %d spots available", availableSpots)
	}

	return errs
}
