package create_booking

import (
	"time"

	"github.com/labcentral/facility-service/internal/domain"
	createBooking "github.com/labcentral/facility-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EquipmentID    string `json:"equipmentId"`
	FacultyName    string `json:"facultyName"`
	Department     string `json:"department"`
	WhatsAppNumber string `json:"whatsappNumber"`
	Purpose        string `json:"purpose"`
	StartDate      string `json:"startDate"` // "2024-01-01"
	EndDate        string `json:"endDate"`   // "2024-01-08"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string `json:"id"`
	EquipmentID    string `json:"equipmentId"`
	EquipmentName  string `json:"equipmentName"`
	FacultyName    string `json:"facultyName"`
	Department     string `json:"department"`
	WhatsAppNumber string `json:"whatsappNumber"`
	Purpose        string `json:"purpose"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	Status         string `json:"status"`
	RequestedAt    string `json:"requestedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		EquipmentID:    r.EquipmentID,
		FacultyName:    r.FacultyName,
		Department:     r.Department,
		WhatsAppNumber: r.WhatsAppNumber,
		Purpose:        r.Purpose,
		StartTime:      startTime,
		EndTime:        endTime,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		EquipmentID:    resp.EquipmentID,
		EquipmentName:  resp.EquipmentName,
		FacultyName:    resp.FacultyName,
		Department:     resp.Department,
		WhatsAppNumber: resp.WhatsAppNumber,
		Purpose:        resp.Purpose,
		StartDate:      resp.StartTime.Format(domain.DateFormat),
		EndDate:        resp.EndTime.Format(domain.DateFormat),
		Status:         resp.Status,
		RequestedAt:    resp.RequestedAt.Format(time.RFC3339),
	}
}
