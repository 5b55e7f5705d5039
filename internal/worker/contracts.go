package worker

import (
	"context"
	"time"
)

// AvailabilityResolver recomputes equipment statuses from the booking set
type AvailabilityResolver interface {
	Resolve(ctx context.Context, now time.Time) error
}

// OverdueScanner fines overdue bookings and dispatches alerts
type OverdueScanner interface {
	Scan(ctx context.Context, now time.Time) error
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

// Logger is the logging dependency of the engine
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
