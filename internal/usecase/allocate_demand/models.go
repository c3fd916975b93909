package allocate_demand

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// Request модель запроса на распределение спроса
type Request struct {
	Items []DemandInput // Элементы спроса в порядке приоритета
	Area  *string       // Запрашивающая область: её held-резервы не блокируют аллокацию
}

// DemandInput один элемент спроса
type DemandInput struct {
	ChannelName string
	Date        time.Time
	Hour        types.TimeString
	Quantity    int
}

// Response модель ответа аллокатора
type Response struct {
	// Items итоговые элементы: возможно расщеплённые и перенесённые,
	// все с количеством строго больше нуля
	Items []ResultItem

	// Dropped элементы (или остатки расщепления), для которых ёмкости
	// не нашлось ни в одном из оставшихся слотов
	Dropped []DroppedItem
}

// ResultItem итоговый элемент спроса
type ResultItem struct {
	ChannelName string
	ChannelID   string // Внешний ID канала; пуст для passthrough-элементов без канала
	Date        time.Time
	Hour        types.TimeString
	Quantity    int
	Outcome     domain.DemandOutcome
}

// DroppedItem отброшенный элемент спроса
type DroppedItem struct {
	ChannelName string
	Date        time.Time
	Hour        types.TimeString
	Quantity    int
	Reason      string
}
