package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/eventpulse/eventpulse/internal/catalog"
	"github.com/eventpulse/eventpulse/internal/domain"
	"github.com/eventpulse/eventpulse/internal/handler/dto"
	"github.com/eventpulse/eventpulse/internal/pkg/metrics"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type EventSvc interface {
	Browse(cfg catalog.FilterConfig) []domain.Event
	Categories() []string
	Grouped() []catalog.CategoryGroup
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
}

type BookingSvc interface {
	Submit(ctx context.Context, userID string, req domain.BookingRequest) (*domain.Booking, error)
	Cancel(ctx context.Context, userID, bookingID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type AuthSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	authService    AuthSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, authService AuthSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		authService:    authService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.ToUserResponse(user), Token: token})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserResponse(user), Token: token})
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	cfg := catalog.DefaultFilter()
	cfg.SearchTerm = c.Query("search")
	cfg.Category = c.Query("category")

	if raw := c.Query("price_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price_min"})
			return
		}
		cfg.PriceMin = v
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid price_max"})
			return
		}
		cfg.PriceMax = v
	}

	events := h.eventService.Browse(cfg)
	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	c.JSON(http.StatusOK, h.eventService.Categories())
}

func (h *Handler) ListEventsGrouped(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToCategoryGroupResponses(h.eventService.Grouped()))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   req.Time,
		Location:    req.Location,
		Category:    req.Category,
		Price:       req.Price,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	userID := c.GetString("user_id")

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), userID, domain.BookingRequest{
		EventID:         req.EventID,
		AttendeeName:    req.AttendeeName,
		AttendeeEmail:   req.AttendeeEmail,
		AttendeePhone:   req.AttendeePhone,
		TicketQuantity:  req.TicketQuantity,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		metrics.BookingOperations.WithLabelValues("submit", "error").Inc()
		h.handleError(c, err)
		return
	}

	metrics.BookingOperations.WithLabelValues("submit", "ok").Inc()
	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	userID := c.GetString("user_id")

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	userID := c.GetString("user_id")

	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), userID, bookingID); err != nil {
		metrics.BookingOperations.WithLabelValues("cancel", "error").Inc()
		h.handleError(c, err)
		return
	}

	metrics.BookingOperations.WithLabelValues("cancel", "ok").Inc()
	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr domain.ValidationErrors
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: verr})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotBookingOwner):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableSpots),
		errors.Is(err, domain.ErrBookingNotCancelable),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
