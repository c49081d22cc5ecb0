package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID              string        `json:"id"`
	EventID         string        `json:"event_id"`
	UserID          string        `json:"user_id"`
	AttendeeName    string        `json:"attendee_name"`
	AttendeeEmail   string        `json:"attendee_email"`
	AttendeePhone   string        `json:"attendee_phone"`
	TicketQuantity  int           `json:"ticket_quantity"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	TotalAmount     float64       `json:"total_amount"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Event is the snapshot joined at fetch time, not a live link.
	Event *Event `json:"event,omitempty"`
}

// BookingRequest is the transient form input for one submission attempt.
// Validated by the booking service and discarded after submission.
type BookingRequest struct {
	EventID         string
	AttendeeName    string
	AttendeeEmail   string
	AttendeePhone   string
	TicketQuantity  int
	SpecialRequests string
}
