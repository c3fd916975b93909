package ledger

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// ClaimRepository интерфейс репозитория резервирований
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	GetByChannelAndDate(ctx context.Context, channelID string, date time.Time, hour *types.TimeString) ([]*domain.Claim, error)
	FindByHourPrefix(ctx context.Context, channelID string, date time.Time, hourPrefix string, area *string) ([]*domain.Claim, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
