package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat возвращается для даты не в одном из двух
// поддерживаемых форматов
var ErrInvalidDateFormat = errors.New("domain: invalid date format")

// ParseDate разбирает дату в формате YYYY-MM-DD или DD/MM/YYYY
// Любой другой формат отклоняется до обращения к хранилищу
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateFormat, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(DateFormatAlt, s); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q, expected %s or %s", ErrInvalidDateFormat, s, DateFormat, DateFormatAlt)
}

// DateOnly обнуляет компонент времени, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDate возвращает true, если обе даты относятся к одному дню
func IsSameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
