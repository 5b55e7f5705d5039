package get_equipment

import "github.com/labcentral/facility-service/internal/domain"

// EquipmentResponse HTTP response model
type EquipmentResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	LabName         string   `json:"labName"`
	Status          string   `json:"status"`
	Description     string   `json:"description"`
	Specifications  []string `json:"specifications"`
	HourlyRate      float64  `json:"hourlyRate"`
	Image           string   `json:"image"`
	TotalUsageHours int      `json:"totalUsageHours"`
}

// FromDomain converts one equipment item into the HTTP response model
func FromDomain(eq *domain.Equipment) *EquipmentResponse {
	return &EquipmentResponse{
		ID:              eq.ID,
		Name:            eq.Name,
		Category:        eq.Category,
		LabName:         eq.LabName,
		Status:          string(eq.Status),
		Description:     eq.Description,
		Specifications:  eq.Specifications,
		HourlyRate:      eq.HourlyRate,
		Image:           eq.Image,
		TotalUsageHours: eq.TotalUsageHours,
	}
}
