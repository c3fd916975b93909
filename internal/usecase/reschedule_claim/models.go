package reschedule_claim

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// Request модель запроса на перенос резервирования touchpoint'а
// Прежние claim'ы (канал, дата, час[, область]) удаляются, новый спрос
// прогоняется через аллокатор и сохраняется
type Request struct {
	ChannelID string    // Внешний ID канала
	Date      time.Time // Прежняя дата
	Hour      string    // Прежний час (сравнивается усечённым до HH:MM)
	Area      *string   // Область: если задана, удаляются только её claim'ы

	NewDate  time.Time        // Новая дата
	NewHour  types.TimeString // Новый час
	Quantity int              // Количество к переносу
	Kind     domain.ClaimKind // Вид создаваемых claim'ов
}

// Response модель ответа с результатом переноса
type Response struct {
	DeletedIDs []int64        // Удалённые прежние claim'ы
	Created    []CreatedClaim // Созданные claim'ы (после аллокации)
	Dropped    int            // Суммарное количество, не нашедшее ёмкости
}

// CreatedClaim созданное резервирование
type CreatedClaim struct {
	ID       int64
	Date     time.Time
	Hour     types.TimeString
	Quantity int
}
