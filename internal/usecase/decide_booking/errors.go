package decide_booking

import "errors"

var (
	// ErrInvalidDecision is returned when the decision is neither
	// APPROVED nor REJECTED
	ErrInvalidDecision = errors.New("invalid decision")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyDecided is returned when the booking has already left
	// the PENDING state
	ErrAlreadyDecided = errors.New("booking already decided")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("decide_booking: internal error")
)
