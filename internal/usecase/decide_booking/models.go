package decide_booking

// Request is the input of the decide-booking use case
type Request struct {
	BookingID string
	Decision  string
}

// Response is the output of the decide-booking use case
type Response struct {
	ID            string
	EquipmentID   string
	EquipmentName string
	FacultyName   string
	Status        string
}
