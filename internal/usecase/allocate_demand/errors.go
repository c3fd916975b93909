package allocate_demand

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Ошибки чтения журнала резервирований фатальны для всего вызова
	ErrInternal = errors.New("usecase: internal error")
)
