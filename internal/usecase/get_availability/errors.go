package get_availability

import "errors"

var (
	// ErrChannelNotFound возвращается, когда канал не найден
	ErrChannelNotFound = errors.New("channel not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
