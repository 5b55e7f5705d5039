package domain

// Booking window limits
const (
	// MaxBookingDays is the hard cap on a booking window,
	// counted as ceil((end-start)/24h)
	MaxBookingDays = 7
)

// Fine policy
const (
	// FinePerDayOverdue is the flat per-day penalty unit applied to
	// approved bookings past their end time (currency-agnostic)
	FinePerDayOverdue = 50
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// EngineeringDepartments is the closed list of departments a requester
// may belong to; the create-booking operation validates against it
var EngineeringDepartments = []string{
	"Computer Science & Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Electrical & Electronics Engineering",
	"Electronics & Communication Engineering",
	"Information Technology",
	"Chemical Engineering",
	"Aerospace Engineering",
	"Biomedical Engineering",
	"Automobile Engineering",
	"Mechatronics Engineering",
	"Nanotechnology",
	"Materials Science & Engineering",
}

// IsKnownDepartment reports whether the department is in the catalog list
func IsKnownDepartment(dept string) bool {
	for _, d := range EngineeringDepartments {
		if d == dept {
			return true
		}
	}
	return false
}
