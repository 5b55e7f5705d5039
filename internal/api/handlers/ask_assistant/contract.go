package ask_assistant

import (
	"context"

	"github.com/labcentral/facility-service/internal/domain"
	"github.com/labcentral/facility-service/internal/integrations/assistant"
)

type AssistantClient interface {
	Ask(ctx context.Context, prompt string, snapshot []assistant.EquipmentSnapshot) string
}

type EquipmentProvider interface {
	List(ctx context.Context) ([]*domain.Equipment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
