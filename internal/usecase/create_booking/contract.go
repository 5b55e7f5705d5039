package create_booking

import (
	"context"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
)

// BookingRepository is the booking store interface of the use case
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// EquipmentRepository is the equipment store interface of the use case
type EquipmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

// NotificationGateway is the outbound gateway interface of the use case
type NotificationGateway interface {
	Send(ctx context.Context, to, message string, entry domain.NotificationStatus) (*domain.NotificationRecord, error)
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

// Logger is the logging dependency of the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
