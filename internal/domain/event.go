package domain

import "time"

type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	StartTime      string    `json:"time"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Capacity       int       `json:"capacity"`
	AvailableSpots int       `json:"available_spots"`
	ImageURL       string    `json:"image_url"`
	Organizer      string    `json:"organizer"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   string
	Location    string
	Category    string
	Price       float64
	Capacity    int
	ImageURL    string
	Organizer   string
	Tags        []string
}
