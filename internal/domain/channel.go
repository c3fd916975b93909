package domain

import "time"

// Channel канал исходящих коммуникаций
// Справочные данные: создаются и обновляются внешним процессом синхронизации,
// планировщик их только читает
type Channel struct {
	ID                int64
	Name              string
	ExternalID        string // ID канала во внешнем board-сервисе, им помечаются claim'ы
	SlotGroupID       string // ID группы board-сервиса с элементами-слотами канала
	MaxHourlyCapacity int    // Максимальная ёмкость отправки в час
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasCapacityLimit возвращает true, если у канала задана почасовая ёмкость
// Канал без ёмкости не участвует в распределении перелива
func (c *Channel) HasCapacityLimit() bool {
	return c.MaxHourlyCapacity > 0
}
