package list_equipment

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
)

type EquipmentProvider interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
