package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "PENDING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	// Declared for forward compatibility; no transition currently
	// produces these two statuses.
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a reservation request for one equipment item.
// The [StartTime, EndTime] window is inclusive on both bounds for
// availability and overdue comparisons.
type Booking struct {
	ID          string
	EquipmentID string

	// Requester data, denormalized into the booking for history
	FacultyName    string
	Department     string
	WhatsAppNumber string

	StartTime time.Time
	EndTime   time.Time
	Purpose   string
	Status    BookingStatus

	RequestedAt time.Time
}

// ShortID returns the last 6 characters of the booking ID,
// used in outbound messages and report rows
func (b *Booking) ShortID() string {
	if len(b.ID) <= 6 {
		return b.ID
	}
	return b.ID[len(b.ID)-6:]
}

// IsDecided returns true if an admin has already ruled on the booking
func (b *Booking) IsDecided() bool {
	return b.Status != StatusPending
}

// Occupies returns true if the booking holds its equipment at the given
// moment: it is approved and its window contains now inclusively
func (b *Booking) Occupies(now time.Time) bool {
	return b.Status == StatusApproved &&
		!b.StartTime.After(now) &&
		!b.EndTime.Before(now)
}
