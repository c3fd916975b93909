package domain

import "github.com/m04kA/SMC-CapacityService/pkg/types"

// Time format constants
const (
	TimeFormat    = "15:04"      // HH:MM
	DateFormat    = "2006-01-02" // YYYY-MM-DD
	DateFormatAlt = "02/01/2006" // DD/MM/YYYY
)

// Парные split-слоты: делят один пул ёмкости, каждому достается
// ровно половина maxHourlyCapacity канала
const (
	SplitSlotFirst  = types.TimeString("08:00")
	SplitSlotSecond = types.TimeString("08:30")
)

// DefaultSlotLabels запасной список слотов
// Используется, когда ни локальный справочник, ни внешний board API
// не вернули ни одного слота: аллокация никогда не остается без сетки
var DefaultSlotLabels = []types.TimeString{
	"06:00", "07:00", "08:00", "08:30", "09:00", "10:00",
	"11:00", "12:00", "12:30", "13:00", "14:00", "15:00",
	"16:00", "17:00", "18:00", "19:00", "20:00", "21:00",
	"22:00",
}
