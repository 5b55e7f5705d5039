package bookings

import (
	"context"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
)

// BookingRepository is the booking store interface used by the service
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// EquipmentRepository is the equipment store interface used by the service
type EquipmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

// TimeProvider is the clock dependency (for testing)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger is the logging dependency of the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
