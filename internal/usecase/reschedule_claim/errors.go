package reschedule_claim

import "errors"

var (
	// ErrChannelNotFound возвращается, когда канал не найден
	ErrChannelNotFound = errors.New("channel not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidKind возвращается при неизвестном виде резервирования
	ErrInvalidKind = errors.New("invalid claim kind")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Транзакция откатывается, но вызывающий должен считать состояние
	// журнала неизвестным и перечитать его
	ErrInternal = errors.New("usecase: internal error")
)
