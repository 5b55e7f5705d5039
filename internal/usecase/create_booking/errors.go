package create_booking

import "errors"

var (
	// ErrInvalidInput is returned on missing or malformed request fields
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEndBeforeStart is returned when the requested window ends
	// before it starts
	ErrEndBeforeStart = errors.New("end before start")

	// ErrExceedsMaxDuration is returned when the requested window is
	// longer than the booking limit
	ErrExceedsMaxDuration = errors.New("exceeds max duration")

	// ErrUnknownDepartment is returned when the department is not in
	// the engineering departments list
	ErrUnknownDepartment = errors.New("unknown department")

	// ErrEquipmentNotFound is returned when the referenced equipment
	// does not exist
	ErrEquipmentNotFound = errors.New("equipment not found")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_booking: internal error")
)
