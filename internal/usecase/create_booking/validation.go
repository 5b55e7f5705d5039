package create_booking

import (
	"fmt"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
)

// validateRequest checks field presence and the booking window rules.
// Nothing is written before every check passes.
func validateRequest(req *Request) error {
	if req.EquipmentID == "" {
		return fmt.Errorf("%w: equipmentId is required", ErrInvalidInput)
	}
	if req.FacultyName == "" {
		return fmt.Errorf("%w: facultyName is required", ErrInvalidInput)
	}
	if req.WhatsAppNumber == "" {
		return fmt.Errorf("%w: whatsappNumber is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if !domain.IsKnownDepartment(req.Department) {
		return fmt.Errorf("%w: %q", ErrUnknownDepartment, req.Department)
	}

	if err := validateWindow(req.StartTime, req.EndTime); err != nil {
		return err
	}

	return nil
}

// validateWindow enforces end >= start and the 7-day cap,
// counted as ceil((end-start)/24h)
func validateWindow(start, end time.Time) error {
	if end.Before(start) {
		return ErrEndBeforeStart
	}

	if windowDays(start, end) > domain.MaxBookingDays {
		return fmt.Errorf("%w: usage is limited to %d days per booking", ErrExceedsMaxDuration, domain.MaxBookingDays)
	}

	return nil
}

// windowDays returns the window length in whole days, rounded up
func windowDays(start, end time.Time) int {
	d := end.Sub(start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
