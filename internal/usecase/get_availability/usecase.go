package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
)

// UseCase use case расчёта доступной ёмкости канала на дату
type UseCase struct {
	channelRepo  ChannelRepository
	claimRepo    ClaimRepository
	slotResolver SlotResolver
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	channelRepo ChannelRepository,
	claimRepo ClaimRepository,
	slotResolver SlotResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		channelRepo:  channelRepo,
		claimRepo:    claimRepo,
		slotResolver: slotResolver,
		logger:       logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: channel=%s, date=%s, context=%s",
		req.ChannelName, req.Date.Format(domain.DateFormat), req.Context)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем канал
	channel, err := uc.channelRepo.GetByName(ctx, req.ChannelName)
	if err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			uc.logger.Warn("GetAvailability: channel %q not found", req.ChannelName)
			return nil, ErrChannelNotFound
		}
		uc.logger.Error("GetAvailability: failed to get channel %q: %v", req.ChannelName, err)
		return nil, fmt.Errorf("%w: failed to get channel: %v", ErrInternal, err)
	}

	// 3. Разрешаем каталог слотов канала
	slots, err := uc.slotResolver.Resolve(ctx, channel.SlotGroupID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve slots for group=%s: %v", channel.SlotGroupID, err)
		return nil, fmt.Errorf("%w: failed to resolve slots: %v", ErrInternal, err)
	}

	// 4. Загружаем резервирования канала на дату
	claims, err := uc.claimRepo.GetByChannelAndDate(ctx, channel.ExternalID, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get claims for channel=%s: %v", channel.ExternalID, err)
		return nil, fmt.Errorf("%w: failed to get claims: %v", ErrInternal, err)
	}

	// 5. Считаем почасовую доступность
	availability := domain.CalculateAvailability(slots, claims, channel.MaxHourlyCapacity, req.Area, req.Context)

	uc.logger.Info("GetAvailability: channel=%s date=%s computed %d slots over %d claims",
		req.ChannelName, req.Date.Format(domain.DateFormat), len(availability), len(claims))

	return &Response{
		ChannelName:       channel.Name,
		ChannelID:         channel.ExternalID,
		Date:              req.Date,
		MaxHourlyCapacity: channel.MaxHourlyCapacity,
		Slots:             availability,
	}, nil
}
