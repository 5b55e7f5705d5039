package equipment

import "errors"

var (
	// ErrEquipmentNotFound is returned when the equipment is not in the store
	ErrEquipmentNotFound = errors.New("equipment.repository: equipment not found")
)
