package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking is not in the store
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateID is returned when a booking with the same ID already exists
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrAlreadyDecided is returned when a decision targets a booking
	// that has already left the PENDING state
	ErrAlreadyDecided = errors.New("booking.repository: booking already decided")
)
