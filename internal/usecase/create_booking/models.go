package create_booking

import "time"

// Request is the input of the create-booking use case
type Request struct {
	EquipmentID    string
	FacultyName    string
	Department     string
	WhatsAppNumber string
	Purpose        string
	StartTime      time.Time
	EndTime        time.Time
}

// Response is the output of the create-booking use case
type Response struct {
	ID             string
	EquipmentID    string
	EquipmentName  string
	FacultyName    string
	Department     string
	WhatsAppNumber string
	Purpose        string
	StartTime      time.Time
	EndTime        time.Time
	Status         string
	RequestedAt    time.Time
}
