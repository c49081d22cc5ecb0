package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventpulse/eventpulse/internal/domain"
	"github.com/eventpulse/eventpulse/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) Refresh(_ context.Context) error {
	f.calls++
	return f.err
}

func validRequest(eventID string) domain.BookingRequest {
	return domain.BookingRequest{
		EventID:        eventID,
		AttendeeName:   "Alice Johnson",
		AttendeeEmail:  "a@b.com",
		AttendeePhone:  "+1 555 0100",
		TicketQuantity: 2,
	}
}

func TestBookingService_Submit_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	refresher := &fakeRefresher{}
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, refresher, log)

	event := &domain.Event{ID: "e1", Title: "Jazz Night", Price: 50, Capacity: 10, AvailableSpots: 2}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().UpdateAvailableSpots(mock.Anything, "e1", 0).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, event).Return()

	booking, err := svc.Submit(context.Background(), "u1", validRequest("e1"))

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, float64(100), booking.TotalAmount)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, 1, refresher.calls)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_TotalAmount(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	event := &domain.Event{ID: "e1", Price: 50, Capacity: 10, AvailableSpots: 10}
	req := validRequest("e1")
	req.TicketQuantity = 3

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().UpdateAvailableSpots(mock.Anything, "e1", 7).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything, event).Return()

	booking, err := svc.Submit(context.Background(), "u1", req)

	require.NoError(t, err)
	assert.Equal(t, float64(150), booking.TotalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_QuantityExceedsSpots(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	refresher := &fakeRefresher{}
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, refresher, log)

	event := &domain.Event{ID: "e1", Price: 50, Capacity: 10, AvailableSpots: 2}
	req := validRequest("e1")
	req.TicketQuantity = 3

	// no Create / UpdateAvailableSpots expectations: validation failures
	// must not touch persistence
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Submit(context.Background(), "u1", req)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "ticket_quantity")
	assert.Equal(t, 0, refresher.calls)
}

func TestBookingService_Submit_ZeroQuantity(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	event := &domain.Event{ID: "e1", AvailableSpots: 5}
	req := validRequest("e1")
	req.TicketQuantity = 0

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Submit(context.Background(), "u1", req)

	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "at least 1 ticket is required", verr["ticket_quantity"])
}

func TestBookingService_Submit_InvalidEmail(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	event := &domain.Event{ID: "e1", AvailableSpots: 5}
	req := validRequest("e1")
	req.AttendeeEmail = "foo"

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Submit(context.Background(), "u1", req)

	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "please enter a valid email", verr["attendee_email"])
}

func TestBookingService_Submit_CollectsAllViolations(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	event := &domain.Event{ID: "e1", AvailableSpots: 5}
	req := domain.BookingRequest{
		EventID:        "e1",
		AttendeeName:   "   ",
		AttendeeEmail:  "foo",
		AttendeePhone:  "",
		TicketQuantity: 0,
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Submit(context.Background(), "u1", req)

	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr, 4)
	assert.Contains(t, verr, "attendee_name")
	assert.Contains(t, verr, "attendee_email")
	assert.Contains(t, verr, "attendee_phone")
	assert.Contains(t, verr, "ticket_quantity")
}

func TestBookingService_Submit_EventNotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Submit(context.Background(), "u1", validRequest("missing"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Submit_CreateError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	refresher := &fakeRefresher{}
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, refresher, log)

	event := &domain.Event{ID: "e1", Price: 50, AvailableSpots: 5}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Submit(context.Background(), "u1", validRequest("e1"))

	require.Error(t, err)
	assert.Equal(t, 0, refresher.calls)
}

func TestBookingService_Submit_SpotUpdateError(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	event := &domain.Event{ID: "e1", Price: 50, AvailableSpots: 5}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().UpdateAvailableSpots(mock.Anything, "e1", 3).Return(errors.New("db error"))

	_, err := svc.Submit(context.Background(), "u1", validRequest("e1"))

	require.Error(t, err)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	event := &domain.Event{ID: "e1", Title: "Jazz Night"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, booking, event).Return()

	err := svc.Cancel(context.Background(), "u1", "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusCancelled}

	// no UpdateStatus expectation: the gate rejects before any write
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "u1", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotCancelable)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	booking := &domain.Booking{ID: "b1", EventID: "e1", UserID: "u2", Status: domain.BookingStatusConfirmed}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "u1", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotBookingOwner)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByUser(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, &fakeRefresher{}, log)

	bookings := []*domain.Booking{
		{ID: "b1", EventID: "e1", UserID: "u1", Status: domain.BookingStatusConfirmed, Event: &domain.Event{ID: "e1"}},
	}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.NotNil(t, result[0].Event)
}
