package availability

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
)

// EquipmentRepository is the equipment store interface used by the resolver
type EquipmentRepository interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
	UpdateStatus(ctx context.Context, id string, status domain.EquipmentStatus) error
}

// BookingRepository is the booking store interface used by the resolver
type BookingRepository interface {
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger is the logging dependency of the resolver
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
