package models

import (
	"errors"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned on an unknown status string
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// ListBookingsRequest is the booking listing filter
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"`
}

// Response models

// BookingView is a booking annotated with live overdue data,
// the shape every read path (listing, report) consumes
type BookingView struct {
	ID             string    `json:"id"`
	ShortID        string    `json:"shortId"`
	EquipmentID    string    `json:"equipmentId"`
	EquipmentName  string    `json:"equipmentName"`
	FacultyName    string    `json:"facultyName"`
	Department     string    `json:"department"`
	WhatsAppNumber string    `json:"whatsappNumber"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Purpose        string    `json:"purpose"`
	Status         string    `json:"status"`
	RequestedAt    time.Time `json:"requestedAt"`

	// Fine is computed at read time, never stored
	Fine      int  `json:"fine"`
	IsOverdue bool `json:"isOverdue"`
}

// BookingListResponse is the booking listing payload
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
}

// FromDomainBooking builds the annotated view of one booking
func FromDomainBooking(b *domain.Booking, equipmentName string, now time.Time) *BookingView {
	if b == nil {
		return nil
	}

	fine := domain.Fine(now, b.EndTime, b.Status)

	return &BookingView{
		ID:             b.ID,
		ShortID:        b.ShortID(),
		EquipmentID:    b.EquipmentID,
		EquipmentName:  equipmentName,
		FacultyName:    b.FacultyName,
		Department:     b.Department,
		WhatsAppNumber: b.WhatsAppNumber,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Purpose:        b.Purpose,
		Status:         string(b.Status),
		RequestedAt:    b.RequestedAt,
		Fine:           fine,
		IsOverdue:      fine > 0,
	}
}

// ToDomainBookingStatus converts a status string into the closed enum
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusRejected,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
