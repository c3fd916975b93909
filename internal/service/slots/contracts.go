package slots

import (
	"context"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/internal/integrations/boardapi"
)

// SlotRepository интерфейс локального справочника слотов
type SlotRepository interface {
	FindActiveByGroup(ctx context.Context, groupID string) ([]*domain.Slot, error)
}

// BoardAPIClient интерфейс клиента board-сервиса
type BoardAPIClient interface {
	GetGroupItems(ctx context.Context, groupID string) ([]boardapi.Item, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
