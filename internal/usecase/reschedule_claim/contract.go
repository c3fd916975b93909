package reschedule_claim

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	allocateDemand "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
)

// ChannelRepository интерфейс справочника каналов
type ChannelRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Channel, error)
}

// ClaimRepository интерфейс репозитория резервирований
type ClaimRepository interface {
	Create(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	FindByHourPrefix(ctx context.Context, channelID string, date time.Time, hourPrefix string, area *string) ([]*domain.Claim, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}

// Allocator интерфейс аллокатора ёмкости
type Allocator interface {
	Execute(ctx context.Context, req *allocateDemand.Request) (*allocateDemand.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
