package domain

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// Slot слот часовой сетки канала из локального справочника
type Slot struct {
	ID        int64
	GroupID   string // Группа board-сервиса, к которой относится слот
	Label     types.TimeString
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotAvailability расчётная ёмкость одного слота на дату
type SlotAvailability struct {
	Hour         types.TimeString
	EffectiveMax int  // Половина ёмкости для split-слотов, полная для остальных
	Used         int  // Занято с учётом same-area exemption
	Available    int  // max(0, EffectiveMax - Used)
	// UsedBySameArea объём held-резервов запрашивающей области
	// Заполняется только когда область передана в запросе
	UsedBySameArea *int
}

// IsFull возвращает true, если в слоте не осталось ёмкости
func (s *SlotAvailability) IsFull() bool {
	return s.Available <= 0
}

// IsSplitSlot возвращает true для одного из парных split-слотов
func IsSplitSlot(hour types.TimeString) bool {
	return hour == SplitSlotFirst || hour == SplitSlotSecond
}

// EffectiveMax возвращает ёмкость слота: половина maxCapacity для
// split-слотов, полная для остальных
func EffectiveMax(hour types.TimeString, maxCapacity int) int {
	if IsSplitSlot(hour) {
		return maxCapacity / 2
	}
	return maxCapacity
}
