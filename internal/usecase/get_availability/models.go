package get_availability

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

// Request модель запроса на расчёт доступной ёмкости
type Request struct {
	ChannelName string             // Имя канала
	Date        time.Time          // Дата расчёта (без времени)
	Area        *string            // Запрашивающая область (опционально)
	Context     domain.ViewContext // Контекст расчёта: form или admin
}

// Response модель ответа с почасовой доступностью канала
type Response struct {
	ChannelName       string
	ChannelID         string // Внешний ID канала
	Date              time.Time
	MaxHourlyCapacity int
	Slots             []domain.SlotAvailability
}
