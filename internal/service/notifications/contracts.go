package notifications

import (
	"context"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
)

// NotificationLog is the persistence interface of the gateway
type NotificationLog interface {
	Prepend(ctx context.Context, rec *domain.NotificationRecord) error
	UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus) error
	GetByID(ctx context.Context, id string) (*domain.NotificationRecord, error)
	List(ctx context.Context) ([]*domain.NotificationRecord, error)
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

// Logger is the logging dependency of the gateway
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
