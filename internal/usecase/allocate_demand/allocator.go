package allocate_demand

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	channelRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/channel"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// workItem изменяемый элемент спроса внутри одного вызова аллокатора
type workItem struct {
	channelName string
	date        time.Time
	hour        types.TimeString
	quantity    int
	outcome     domain.DemandOutcome
}

// stageKey структурный ключ промежуточного учёта (канал, дата, час)
type stageKey struct {
	channelID string
	date      string
	hour      types.TimeString
}

// allocation состояние одного вызова аллокатора
// Промежуточные итоги (staged) живут только внутри вызова и
// пересобираются на каждом проходе
type allocation struct {
	uc   *UseCase
	area *string

	items   []*workItem
	dropped []DroppedItem

	channels map[string]*domain.Channel // nil = канал не найден
	catalogs map[string][]types.TimeString
	reserved map[stageKey]int // персистентные резервы, кеш на время вызова
	staged   map[stageKey]int // распределено ранее в текущем проходе
}

func newAllocation(uc *UseCase, area *string) *allocation {
	return &allocation{
		uc:       uc,
		area:     area,
		channels: make(map[string]*domain.Channel),
		catalogs: make(map[string][]types.TimeString),
		reserved: make(map[stageKey]int),
	}
}

// pass выполняет один проход по списку элементов
// Возвращает true, если список был структурно изменён и нужен новый проход
func (a *allocation) pass(ctx context.Context) (bool, error) {
	a.staged = make(map[stageKey]int)

	for i := 0; i < len(a.items); i++ {
		it := a.items[i]

		// Элемент без канала/даты/часа или с неположительным количеством
		// выбывает из распределения
		if it.channelName == "" || it.date.IsZero() || it.hour == "" || it.quantity <= 0 {
			a.uc.logger.Warn("AllocateDemand: removing invalid item channel=%q hour=%q quantity=%d",
				it.channelName, it.hour, it.quantity)
			a.removeAt(i)
			return true, nil
		}

		ch, err := a.channel(ctx, it.channelName)
		if err != nil {
			return false, err
		}

		// Неизвестный канал или канал без ёмкости: элемент проходит без
		// изменений и не участвует в переливе
		if ch == nil || !ch.HasCapacityLimit() {
			it.outcome = domain.OutcomePassthroughUnbounded
			continue
		}

		key := stageKey{
			channelID: ch.ExternalID,
			date:      domain.DateOnly(it.date).Format(domain.DateFormat),
			hour:      it.hour,
		}

		reservedQty, err := a.reservedFor(ctx, key, it.date)
		if err != nil {
			return false, err
		}

		effectiveMax := domain.EffectiveMax(it.hour, ch.MaxHourlyCapacity)
		available := effectiveMax - (reservedQty + a.staged[key])
		if available < 0 {
			available = 0
		}

		switch {
		case it.quantity <= available:
			// Умещается целиком
			a.staged[key] += it.quantity
			it.outcome = domain.OutcomeAllocated

		case available <= 0:
			// Слот исчерпан: переносим элемент целиком в следующий слот
			next, ok, err := a.nextSlot(ctx, ch, it.hour)
			if err != nil {
				return false, err
			}
			if !ok {
				a.drop(it, it.quantity, "no capacity in any remaining slot")
				a.removeAt(i)
				return true, nil
			}
			it.hour = next
			return true, nil

		default:
			// 0 < available < quantity: усекаем элемент до остатка ёмкости,
			// излишек уходит в следующий слот отдельным элементом
			remainder := it.quantity - available
			it.quantity = available
			a.staged[key] += available
			it.outcome = domain.OutcomeAllocated

			next, ok, err := a.nextSlot(ctx, ch, it.hour)
			if err != nil {
				return false, err
			}
			if !ok {
				// Следующего слота нет: остаток отбрасывается, усечённый
				// элемент остается
				a.drop(it, remainder, "remainder discarded, no next slot")
				continue
			}

			split := &workItem{
				channelName: it.channelName,
				date:        it.date,
				hour:        next,
				quantity:    remainder,
			}
			a.insertAfter(i, split)
			return true, nil
		}
	}

	return false, nil
}

// channel возвращает канал по имени с кешированием на время вызова
// Отсутствующий канал запоминается как nil и не считается ошибкой
func (a *allocation) channel(ctx context.Context, name string) (*domain.Channel, error) {
	if ch, ok := a.channels[name]; ok {
		return ch, nil
	}

	ch, err := a.uc.channelRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			a.uc.logger.Warn("AllocateDemand: channel %q not found, passing item through", name)
			a.channels[name] = nil
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get channel %q: %v", ErrInternal, name, err)
	}

	a.channels[name] = ch
	return ch, nil
}

// reservedFor возвращает персистентно занятую ёмкость ключа с учётом
// same-area exemption, кешируя результат на время вызова
func (a *allocation) reservedFor(ctx context.Context, key stageKey, date time.Time) (int, error) {
	if qty, ok := a.reserved[key]; ok {
		return qty, nil
	}

	claims, err := a.uc.claimRepo.GetByChannelAndDate(ctx, key.channelID, date, &key.hour)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get claims for channel=%s hour=%s: %v",
			ErrInternal, key.channelID, key.hour, err)
	}

	qty := domain.CountReserved(claims, a.area)
	a.reserved[key] = qty
	return qty, nil
}

// nextSlot возвращает слот, позиционно следующий за hour в каталоге канала
// Если hour в каталоге не найден, следующим считается первый слот каталога
func (a *allocation) nextSlot(ctx context.Context, ch *domain.Channel, hour types.TimeString) (types.TimeString, bool, error) {
	catalog, err := a.catalog(ctx, ch.SlotGroupID)
	if err != nil {
		return "", false, err
	}

	idx := -1
	for i, label := range catalog {
		if label == hour {
			idx = i
			break
		}
	}

	next := idx + 1 // при idx == -1 следующим становится первый слот
	if next >= len(catalog) {
		return "", false, nil
	}

	return catalog[next], true, nil
}

func (a *allocation) catalog(ctx context.Context, groupID string) ([]types.TimeString, error) {
	if catalog, ok := a.catalogs[groupID]; ok {
		return catalog, nil
	}

	catalog, err := a.uc.slotResolver.Resolve(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve slots for group=%s: %v", ErrInternal, groupID, err)
	}

	a.catalogs[groupID] = catalog
	return catalog, nil
}

func (a *allocation) drop(it *workItem, quantity int, reason string) {
	a.uc.logger.Warn("AllocateDemand: dropping channel=%s date=%s hour=%s quantity=%d: %s",
		it.channelName, it.date.Format(domain.DateFormat), it.hour, quantity, reason)

	a.dropped = append(a.dropped, DroppedItem{
		ChannelName: it.channelName,
		Date:        it.date,
		Hour:        it.hour,
		Quantity:    quantity,
		Reason:      reason,
	})
}

func (a *allocation) removeAt(i int) {
	a.items = append(a.items[:i], a.items[i+1:]...)
}

func (a *allocation) insertAfter(i int, it *workItem) {
	a.items = append(a.items, nil)
	copy(a.items[i+2:], a.items[i+1:])
	a.items[i+1] = it
}
