package reschedule_claim

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
	allocateDemand "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
)

// UseCase use case переноса резервирования touchpoint'а на новый слот
// Старые claim'ы удаляются и новые вставляются в одной сериализуемой
// транзакции, чтобы между удалением и вставкой никто не занял ёмкость
type UseCase struct {
	channelRepo ChannelRepository
	claimRepo   ClaimRepository
	allocator   Allocator
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	channelRepo ChannelRepository,
	claimRepo ClaimRepository,
	allocator Allocator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		channelRepo: channelRepo,
		claimRepo:   claimRepo,
		allocator:   allocator,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case переноса резервирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleClaim: channel=%s, %s %s -> %s %s, quantity=%d",
		req.ChannelID, req.Date.Format(domain.DateFormat), req.Hour,
		req.NewDate.Format(domain.DateFormat), req.NewHour, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleClaim: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем канал: аллокатору нужно имя, журналу — внешний ID
	channel, err := uc.channelRepo.GetByExternalID(ctx, req.ChannelID)
	if err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			uc.logger.Warn("RescheduleClaim: channel id=%s not found", req.ChannelID)
			return nil, ErrChannelNotFound
		}
		uc.logger.Error("RescheduleClaim: failed to get channel id=%s: %v", req.ChannelID, err)
		return nil, fmt.Errorf("%w: failed to get channel: %v", ErrInternal, err)
	}

	var result *Response

	// 3. Удаление старых и вставка новых claim'ов в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Находим прежние claim'ы по усечённому часу
		oldClaims, err := uc.claimRepo.FindByHourPrefix(txCtx, channel.ExternalID, req.Date, req.Hour, req.Area)
		if err != nil {
			uc.logger.Error("RescheduleClaim: failed to find old claims: %v", err)
			return fmt.Errorf("%w: failed to find old claims: %v", ErrInternal, err)
		}

		deletedIDs := make([]int64, 0, len(oldClaims))
		for _, claim := range oldClaims {
			deletedIDs = append(deletedIDs, claim.ID)
		}

		// 3.2. Удаляем их до вставки новых, освобождая ёмкость
		if len(deletedIDs) > 0 {
			if err := uc.claimRepo.DeleteByIDs(txCtx, deletedIDs); err != nil {
				uc.logger.Error("RescheduleClaim: failed to delete old claims: %v", err)
				return fmt.Errorf("%w: failed to delete old claims: %v", ErrInternal, err)
			}
			uc.logger.Info("RescheduleClaim: deleted %d old claims", len(deletedIDs))
		}

		// 3.3. Прогоняем новый спрос через аллокатор
		allocated, err := uc.allocator.Execute(txCtx, &allocateDemand.Request{
			Items: []allocateDemand.DemandInput{
				{
					ChannelName: channel.Name,
					Date:        req.NewDate,
					Hour:        req.NewHour,
					Quantity:    req.Quantity,
				},
			},
			Area: req.Area,
		})
		if err != nil {
			uc.logger.Error("RescheduleClaim: allocation failed: %v", err)
			return fmt.Errorf("%w: allocation failed: %v", ErrInternal, err)
		}

		// 3.4. Сохраняем результат аллокации как новые claim'ы
		created := make([]CreatedClaim, 0, len(allocated.Items))
		for _, item := range allocated.Items {
			claim := &domain.Claim{
				ChannelID: channel.ExternalID,
				Date:      domain.DateOnly(item.Date),
				Hour:      item.Hour,
				Quantity:  item.Quantity,
				Area:      req.Area,
				Kind:      req.Kind,
			}

			saved, err := uc.claimRepo.Create(txCtx, claim)
			if err != nil {
				uc.logger.Error("RescheduleClaim: failed to create claim: %v", err)
				return fmt.Errorf("%w: failed to create claim: %v", ErrInternal, err)
			}

			created = append(created, CreatedClaim{
				ID:       saved.ID,
				Date:     saved.Date,
				Hour:     saved.Hour,
				Quantity: saved.Quantity,
			})
		}

		droppedTotal := 0
		for _, dropped := range allocated.Dropped {
			droppedTotal += dropped.Quantity
		}

		result = &Response{
			DeletedIDs: deletedIDs,
			Created:    created,
			Dropped:    droppedTotal,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleClaim: deleted %d, created %d claims, dropped quantity=%d",
		len(result.DeletedIDs), len(result.Created), result.Dropped)

	return result, nil
}
