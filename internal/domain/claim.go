package domain

import (
	"time"

	"github.com/m04kA/SMC-CapacityService/pkg/types"
)

// ClaimKind вид резервирования ёмкости
type ClaimKind string

const (
	// KindScheduled твердое обязательство: ёмкость занята безусловно
	KindScheduled ClaimKind = "scheduled"

	// KindHeld мягкое резервирование: для своей же области видится как
	// переиспользуемое (см. same-area exemption)
	KindHeld ClaimKind = "held"
)

// IsValid возвращает true для известного вида резервирования
func (k ClaimKind) IsValid() bool {
	return k == KindScheduled || k == KindHeld
}

// Claim строка журнала резервирований: привязывает количество к
// (канал, дата, час) от имени запрашивающей области
// После создания неизменяем; при переносе touchpoint'а старый claim
// удаляется и вставляется новый
type Claim struct {
	ID        int64
	ChannelID string           // Внешний ID канала
	Date      time.Time        // Календарная дата (без времени)
	Hour      types.TimeString // Час слота (HH:MM)
	Quantity  int              // Количество, строго > 0 при создании
	Area      *string          // Запрашивающая область (опционально)
	Kind      ClaimKind
	CreatedAt time.Time
}

// IsSameArea возвращает true, если claim принадлежит указанной области
// Отсутствие области с любой стороны — не совпадение
func (c *Claim) IsSameArea(area *string) bool {
	return area != nil && c.Area != nil && *c.Area == *area
}
