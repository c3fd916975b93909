package domain

import (
	"sort"

	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// ViewContext контекст расчёта доступности
type ViewContext string

const (
	// ViewContextForm публичная форма: held-резервы своей области не
	// блокируют повторную отправку (same-area exemption)
	ViewContextForm ViewContext = "form"

	// ViewContextAdmin административный просмотр: held-резервы считаются
	// занятыми всегда, в том числе собственные
	ViewContextAdmin ViewContext = "admin"
)

// IsValid возвращает true для известного контекста
func (v ViewContext) IsValid() bool {
	return v == ViewContextForm || v == ViewContextAdmin
}

// CalculateAvailability считает занятость и остаток ёмкости каждого слота
// каталога на одну дату по claim'ам этой даты.
//
// Правила учёта:
//   - scheduled всегда занимает ёмкость;
//   - held в контексте form занимает ёмкость, только если область claim'а
//     отличается от запрашивающей (или область не передана); совпавшие
//     попадают в UsedBySameArea и остаются доступными;
//   - held в контексте admin занимает ёмкость безусловно, совпавшие по
//     области дополнительно отражаются в UsedBySameArea как справочная
//     величина.
//
// UsedBySameArea заполняется только при переданной области. Слоты в
// результате отсортированы по метке по возрастанию.
func CalculateAvailability(
	slots []types.TimeString,
	claims []*Claim,
	maxCapacity int,
	area *string,
	viewCtx ViewContext,
) []SlotAvailability {
	result := make([]SlotAvailability, 0, len(slots))

	for _, slot := range slots {
		effectiveMax := EffectiveMax(slot, maxCapacity)

		used := 0
		sameArea := 0

		for _, claim := range claims {
			if types.TimeString(types.TruncateToHHMM(claim.Hour.String())) != slot {
				continue
			}

			switch claim.Kind {
			case KindScheduled:
				used += claim.Quantity
			case KindHeld:
				if claim.IsSameArea(area) {
					sameArea += claim.Quantity
					if viewCtx == ViewContextAdmin {
						used += claim.Quantity
					}
				} else {
					used += claim.Quantity
				}
			}
		}

		available := effectiveMax - used
		if available < 0 {
			available = 0
		}

		availability := SlotAvailability{
			Hour:         slot,
			EffectiveMax: effectiveMax,
			Used:         used,
			Available:    available,
		}
		if area != nil {
			availability.UsedBySameArea = &sameArea
		}

		result = append(result, availability)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Hour.IsBefore(result[j].Hour)
	})

	return result
}

// CountReserved суммирует занятую ёмкость списка claim'ов с учётом
// same-area exemption: scheduled считается всегда, held — только когда
// его область не совпадает с запрашивающей
// Симметрично внутреннему учёту аллокатора
func CountReserved(claims []*Claim, area *string) int {
	total := 0
	for _, claim := range claims {
		switch claim.Kind {
		case KindScheduled:
			total += claim.Quantity
		case KindHeld:
			if !claim.IsSameArea(area) {
				total += claim.Quantity
			}
		}
	}
	return total
}
