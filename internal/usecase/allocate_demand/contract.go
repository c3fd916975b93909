package allocate_demand

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// ChannelRepository интерфейс справочника каналов
type ChannelRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Channel, error)
}

// ClaimRepository интерфейс репозитория резервирований
type ClaimRepository interface {
	GetByChannelAndDate(ctx context.Context, channelID string, date time.Time, hour *types.TimeString) ([]*domain.Claim, error)
}

// SlotResolver интерфейс разрешения каталога слотов
type SlotResolver interface {
	Resolve(ctx context.Context, groupID string) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
