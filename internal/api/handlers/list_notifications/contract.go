package list_notifications

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
)

type NotificationGateway interface {
	List(ctx context.Context) ([]*domain.NotificationRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
