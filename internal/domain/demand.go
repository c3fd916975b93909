package domain

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// DemandItem единица спроса на отправку: сколько и через какой канал
// отправить в конкретный (дата, час)
// Рабочая единица аллокатора, не персистится; аллокатор может менять
// количество и час, а также расщеплять элемент на два
type DemandItem struct {
	ChannelName string
	Date        time.Time
	Hour        types.TimeString
	Quantity    int
	Area        *string
}

// DemandOutcome итог обработки элемента спроса аллокатором
type DemandOutcome string

const (
	// OutcomeAllocated элемент уместился в ёмкость (возможно, после
	// переноса или расщепления)
	OutcomeAllocated DemandOutcome = "allocated"

	// OutcomePassthroughUnbounded канал не найден или без ёмкости:
	// элемент пропущен без изменений
	OutcomePassthroughUnbounded DemandOutcome = "passthrough_unbounded"

	// OutcomeDroppedNoCapacity ёмкости не нашлось ни в одном из
	// оставшихся слотов, элемент (или остаток) отброшен
	OutcomeDroppedNoCapacity DemandOutcome = "dropped_no_capacity"
)
