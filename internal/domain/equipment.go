package domain

// EquipmentStatus represents the derived status of an equipment item
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentInUse       EquipmentStatus = "IN_USE"
	EquipmentMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentBooked      EquipmentStatus = "BOOKED"
)

// Equipment represents a lab instrument from the facility catalog.
// Status is a derived field: except for MAINTENANCE (manual-only,
// sticky), it is recomputed from the booking set on every engine tick.
type Equipment struct {
	ID             string
	Name           string
	Category       string
	LabName        string
	Status         EquipmentStatus
	Description    string
	Specifications []string
	HourlyRate     float64
	Image          string
	TotalUsageHours int
}

// InMaintenance returns true if the item is in the manual-only
// maintenance state and must be skipped by the availability resolver
func (e *Equipment) InMaintenance() bool {
	return e.Status == EquipmentMaintenance
}
