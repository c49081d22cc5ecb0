package dto

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Category    string   `json:"category" binding:"required"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	ImageURL    string   `json:"image_url"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

// CreateBookingRequest carries the raw form input. Only the event id is
// bound as required here; the attendee fields go through the booking
// service's validation so all violations come back together.
type CreateBookingRequest struct {
	EventID         string `json:"event_id" binding:"required,uuid"`
	AttendeeName    string `json:"attendee_name"`
	AttendeeEmail   string `json:"attendee_email"`
	AttendeePhone   string `json:"attendee_phone"`
	TicketQuantity  int    `json:"ticket_quantity"`
	SpecialRequests string `json:"special_requests"`
}
