package allocate_demand

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// UseCase use case распределения спроса по часовым слотам каналов.
//
// Алгоритм: итеративное переписывание изменяемого списка элементов спроса
// до неподвижной точки. Элемент либо умещается в остаток ёмкости слота,
// либо переносится целиком в следующий слот каталога, либо расщепляется:
// часть остается в текущем слоте, остаток уходит в следующий. Элемент без
// известного канала или без ёмкости пропускается как неограниченный.
// После любой структурной мутации (удаление, перенос часа, вставка)
// проход начинается с начала списка, чтобы уже обработанные элементы
// перепроверялись против свежих промежуточных итогов.
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

// Execute выполняет use case распределения спроса
// Всегда возвращает best-effort результат: плохой элемент не роняет
// пакет, фатальны только ошибки чтения журнала резервирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateDemand: %d items, area=%s", len(req.Items), areaLabel(req.Area))

	if req.Items == nil {
		return nil, fmt.Errorf("%w: items are required", ErrInvalidInput)
	}

	alloc := newAllocation(uc, req.Area)
	for _, input := range req.Items {
		alloc.items = append(alloc.items, &workItem{
			channelName: input.ChannelName,
			date:        input.Date,
			hour:        input.Hour,
			quantity:    input.Quantity,
		})
	}

	// Переписываем список до неподвижной точки: проход без единой
	// структурной мутации означает, что каждый элемент уместился
	for {
		mutated, err := alloc.pass(ctx)
		if err != nil {
			return nil, err
		}
		if !mutated {
			break
		}
	}

	resp := alloc.buildResponse()

	uc.logger.Info("AllocateDemand: finished with %d items, %d dropped",
		len(resp.Items), len(resp.Dropped))

	return resp, nil
}

func areaLabel(area *string) string {
	if area == nil {
		return "<none>"
	}
	return *area
}

func (a *allocation) buildResponse() *Response {
	resp := &Response{
		Items:   make([]ResultItem, 0, len(a.items)),
		Dropped: a.dropped,
	}
	if resp.Dropped == nil {
		resp.Dropped = make([]DroppedItem, 0)
	}

	for _, it := range a.items {
		if it.quantity <= 0 {
			continue
		}

		externalID := ""
		if ch := a.channels[it.channelName]; ch != nil {
			externalID = ch.ExternalID
		}

		outcome := it.outcome
		if outcome == "" {
			outcome = domain.OutcomeAllocated
		}

		resp.Items = append(resp.Items, ResultItem{
			ChannelName: it.channelName,
			ChannelID:   externalID,
			Date:        it.date,
			Hour:        it.hour,
			Quantity:    it.quantity,
			Outcome:     outcome,
		})
	}

	return resp
}
