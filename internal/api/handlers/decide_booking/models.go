package decide_booking

import (
	decideBooking "github.com/labcentral/facility-service/internal/usecase/decide_booking"
)

// DecideBookingRequest HTTP request model
type DecideBookingRequest struct {
	Decision string `json:"decision"` // "APPROVED" or "REJECTED"
}

// DecisionResponse HTTP response model
type DecisionResponse struct {
	ID            string `json:"id"`
	EquipmentID   string `json:"equipmentId"`
	EquipmentName string `json:"equipmentName"`
	FacultyName   string `json:"facultyName"`
	Status        string `json:"status"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *decideBooking.Response) *DecisionResponse {
	return &DecisionResponse{
		ID:            resp.ID,
		EquipmentID:   resp.EquipmentID,
		EquipmentName: resp.EquipmentName,
		FacultyName:   resp.FacultyName,
		Status:        resp.Status,
	}
}
