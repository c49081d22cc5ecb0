package dto

import (
	"time"

	"github.com/eventpulse/eventpulse/internal/catalog"
	"github.com/eventpulse/eventpulse/internal/domain"
)

const dateLayout = "2006-01-02"

type EventResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Location       string   `json:"location"`
	Category       string   `json:"category"`
	Price          float64  `json:"price"`
	Capacity       int      `json:"capacity"`
	AvailableSpots int      `json:"available_spots"`
	ImageURL       string   `json:"image_url"`
	Organizer      string   `json:"organizer"`
	Tags           []string `json:"tags"`
	CreatedAt      string   `json:"created_at"`
}

type CategoryGroupResponse struct {
	Category string          `json:"category"`
	Events   []EventResponse `json:"events"`
}

type BookingResponse struct {
	ID              string         `json:"id"`
	EventID         string         `json:"event_id"`
	UserID          string         `json:"user_id"`
	AttendeeName    string         `json:"attendee_name"`
	AttendeeEmail   string         `json:"attendee_email"`
	AttendeePhone   string         `json:"attendee_phone"`
	TicketQuantity  int            `json:"ticket_quantity"`
	SpecialRequests string         `json:"special_requests,omitempty"`
	TotalAmount     float64        `json:"total_amount"`
	Status          string         `json:"status"`
	CreatedAt       string         `json:"created_at"`
	Event           *EventResponse `json:"event,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date.Format(dateLayout),
		Time:           e.StartTime,
		Location:       e.Location,
		Category:       e.Category,
		Price:          e.Price,
		Capacity:       e.Capacity,
		AvailableSpots: e.AvailableSpots,
		ImageURL:       e.ImageURL,
		Organizer:      e.Organizer,
		Tags:           e.Tags,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []domain.Event) []EventResponse {
	res := make([]EventResponse, 0, len(events))
	for i := range events {
		res = append(res, ToEventResponse(&events[i]))
	}
	return res
}

func ToCategoryGroupResponses(groups []catalog.CategoryGroup) []CategoryGroupResponse {
	res := make([]CategoryGroupResponse, 0, len(groups))
	for _, g := range groups {
		res = append(res, CategoryGroupResponse{
			Category: g.Category,
			Events:   ToEventResponses(g.Events),
		})
	}
	return res
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		EventID:         b.EventID,
		UserID:          b.UserID,
		AttendeeName:    b.AttendeeName,
		AttendeeEmail:   b.AttendeeEmail,
		AttendeePhone:   b.AttendeePhone,
		TicketQuantity:  b.TicketQuantity,
		SpecialRequests: b.SpecialRequests,
		TotalAmount:     b.TotalAmount,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.Event != nil {
		event := ToEventResponse(b.Event)
		resp.Event = &event
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
