package get_equipment

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
)

type EquipmentProvider interface {
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
