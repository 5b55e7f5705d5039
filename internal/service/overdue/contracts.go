package overdue

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
)

// BookingRepository is the booking store interface used by the notifier
type BookingRepository interface {
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// EquipmentRepository is the equipment store interface used by the notifier
type EquipmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

// NotificationGateway is the outbound gateway interface
type NotificationGateway interface {
	Send(ctx context.Context, to, message string, entry domain.NotificationStatus) (*domain.NotificationRecord, error)
}

// Logger is the logging dependency of the notifier
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
