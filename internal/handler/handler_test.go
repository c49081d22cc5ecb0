package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/eventpulse/eventpulse/internal/catalog"
	"github.com/eventpulse/eventpulse/internal/domain"
	"github.com/eventpulse/eventpulse/internal/handler/dto"
	hmocks "github.com/eventpulse/eventpulse/internal/handler/mocks"
)

const testUserID = "7a1f3d0e-9a74-4a2e-b6a7-3f8f2f1c9d00"

// fakeAuth stands in for the JWT middleware so handler tests exercise
// the explicit user id flow without minting tokens.
func fakeAuth(c *ginext.Context) {
	c.Set("user_id", testUserID)
	c.Next()
}

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockBookingSvc, *hmocks.MockAuthSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	authSvc := hmocks.NewMockAuthSvc(t)

	h := NewHandler(eventSvc, bookingSvc, authSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/events", h.ListEvents)
		api.GET("/events/categories", h.ListCategories)
		api.GET("/events/grouped", h.ListEventsGrouped)
		api.GET("/events/:id", h.GetEvent)

		authed := api.Group("")
		authed.Use(fakeAuth)
		{
			authed.POST("/events", h.CreateEvent)
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings", h.ListMyBookings)
			authed.POST("/bookings/:id/cancel", h.CancelBooking)
		}
	}

	return eventSvc, bookingSvc, authSvc, r
}

func testEvent(id string) *domain.Event {
	return &domain.Event{
		ID:             id,
		Title:          "Tech Conference",
		Description:    "Annual gathering",
		Date:           time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		Location:       "Convention Center",
		Category:       "Technology",
		Price:          299,
		Capacity:       500,
		AvailableSpots: 342,
		Tags:           []string{"tech"},
		CreatedAt:      time.Now(),
	}
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	_, _, authSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		FullName:  "Alice Smith",
		CreatedAt: time.Now(),
	}
	authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, "token123", nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice Smith",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "token123", resp.Token)
}

func TestHandler_Register_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"email":"alice@example.com"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	_, _, authSvc, r := setupRouter(t)

	authSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, "", domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
		FullName: "Bob Jones",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, authSvc, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Email: "alice@example.com", CreatedAt: time.Now()}
	authSvc.EXPECT().Login(mock.Anything, "alice@example.com", "secret123").Return(user, "token123", nil)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token123", resp.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, _, authSvc, r := setupRouter(t)

	authSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return(nil, "", domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_ListEvents_DefaultFilter(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []domain.Event{*testEvent("e1"), *testEvent("e2")}
	eventSvc.EXPECT().Browse(catalog.DefaultFilter()).Return(events)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListEvents_WithFilters(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	want := catalog.FilterConfig{
		SearchTerm: "jazz",
		Category:   "Music",
		PriceMin:   10,
		PriceMax:   100,
	}
	eventSvc.EXPECT().Browse(want).Return([]domain.Event{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?search=jazz&category=Music&price_min=10&price_max=100", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestHandler_ListEvents_InvalidPriceMin(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?price_min=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_NegativePriceMax(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?price_max=-5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListCategories_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Categories().Return([]string{"Music", "Technology"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Music", "Technology"}, resp)
}

func TestHandler_ListEventsGrouped_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	groups := []catalog.CategoryGroup{
		{Category: "Technology", Events: []domain.Event{*testEvent("e1")}},
	}
	eventSvc.EXPECT().Grouped().Return(groups)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/grouped", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CategoryGroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Technology", resp[0].Category)
	assert.Len(t, resp[0].Events, 1)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(testEvent(eventID), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tech Conference", resp.Title)
	assert.Equal(t, 342, resp.AvailableSpots)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(testEvent(uuid.New().String()), nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:    "Tech Conference",
		Date:     "2026-10-12",
		Time:     "09:00",
		Category: "Technology",
		Price:    299,
		Capacity: 500,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tech Conference", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","date":"not-a-date","category":"Music","capacity":10}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func validBookingBody(eventID string) []byte {
	body, _ := json.Marshal(dto.CreateBookingRequest{
		EventID:        eventID,
		AttendeeName:   "Alice Smith",
		AttendeeEmail:  "alice@example.com",
		AttendeePhone:  "+15550100",
		TicketQuantity: 2,
	})
	return body
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		EventID:        eventID,
		UserID:         testUserID,
		AttendeeName:   "Alice Smith",
		TicketQuantity: 2,
		TotalAmount:    598,
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      time.Now(),
	}

	bookingSvc.EXPECT().Submit(mock.Anything, testUserID, mock.Anything).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validBookingBody(eventID)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, testUserID, resp.UserID)
}

func TestHandler_CreateBooking_ValidationErrors(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	verr := domain.ValidationErrors{
		"attendee_name":  "name is required",
		"attendee_email": "please enter a valid email",
	}
	bookingSvc.EXPECT().Submit(mock.Anything, testUserID, mock.Anything).Return(nil, verr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validBookingBody(eventID)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "name is required", resp.Fields["attendee_name"])
	assert.Equal(t, "please enter a valid email", resp.Fields["attendee_email"])
}

func TestHandler_CreateBooking_MissingEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"attendee_name":"Alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_EventNotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	bookingSvc.EXPECT().Submit(mock.Anything, testUserID, mock.Anything).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(validBookingBody(eventID)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookings := []*domain.Booking{
		{
			ID:             "b1",
			EventID:        "e1",
			UserID:         testUserID,
			TicketQuantity: 1,
			Status:         domain.BookingStatusConfirmed,
			CreatedAt:      time.Now(),
			Event:          testEvent("e1"),
		},
	}
	bookingSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Event)
	assert.Equal(t, "Tech Conference", resp[0].Event.Title)
}

func TestHandler_ListMyBookings_Empty(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, testUserID, bookingID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/bad-id/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotOwner(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, testUserID, bookingID).Return(domain.ErrNotBookingOwner)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_AlreadyCancelled(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, testUserID, bookingID).Return(domain.ErrBookingNotCancelable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetByID(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
