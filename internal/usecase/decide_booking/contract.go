package decide_booking

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
)

// BookingRepository is the booking store interface of the use case
type BookingRepository interface {
	Decide(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// EquipmentRepository is the equipment store interface of the use case
type EquipmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

// NotificationGateway is the outbound gateway interface of the use case
type NotificationGateway interface {
	Send(ctx context.Context, to, message string, entry domain.NotificationStatus) (*domain.NotificationRecord, error)
}

// Logger is the logging dependency of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
