package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNoAvailableSpots     = errors.New("no available spots")
	ErrBookingNotCancelable = errors.New("only confirmed bookings can be cancelled")
	ErrNotBookingOwner      = errors.New("booking belongs to another user")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
