package slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// Service сервис разрешения каталога слотов канала
type Service struct {
	slotRepo    SlotRepository
	boardClient BoardAPIClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога слотов
func NewService(
	slotRepo SlotRepository,
	boardClient BoardAPIClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		boardClient: boardClient,
		logger:      logger,
	}
}

// Resolve возвращает упорядоченный каталог часовых слотов группы.
//
// Порядок источников:
//  1. локальный справочник (отсортирован по метке);
//  2. элементы группы во внешнем board-сервисе, порядок из API принимается
//     как есть; любая ошибка внешнего вызова логируется и трактуется как
//     пустой результат;
//  3. встроенный список по умолчанию.
//
// Каталог никогда не бывает пустым: аллокация не должна остаться без сетки.
func (s *Service) Resolve(ctx context.Context, groupID string) ([]types.TimeString, error) {
	localSlots, err := s.slotRepo.FindActiveByGroup(ctx, groupID)
	if err != nil {
		s.logger.Error("Resolve: failed to load local slots for group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if len(localSlots) > 0 {
		labels := make([]types.TimeString, 0, len(localSlots))
		for _, slot := range localSlots {
			labels = append(labels, slot.Label)
		}
		s.logger.Info("Resolve: group=%s resolved %d slots from local reference", groupID, len(labels))
		return labels, nil
	}

	// Локальный справочник пуст: пробуем внешний board API
	items, err := s.boardClient.GetGroupItems(ctx, groupID)
	if err != nil {
		// Ошибка внешнего сервиса поглощается: считаем, что данных нет
		s.logger.Warn("Resolve: board API failed for group=%s, falling back to defaults: %v", groupID, err)
		items = nil
	}

	if len(items) > 0 {
		labels := make([]types.TimeString, 0, len(items))
		for _, item := range items {
			labels = append(labels, types.TimeString(types.TruncateToHHMM(item.Name)))
		}
		s.logger.Info("Resolve: group=%s resolved %d slots from board API", groupID, len(labels))
		return labels, nil
	}

	s.logger.Info("Resolve: group=%s has no slots anywhere, using built-in defaults", groupID)
	return append([]types.TimeString(nil), domain.DefaultSlotLabels...), nil
}
