package ledger

import "errors"

var (
	// ErrInvalidQuantity возвращается при попытке создать резервирование
	// с неположительным количеством
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidKind возвращается при неизвестном виде резервирования
	ErrInvalidKind = errors.New("invalid claim kind")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger service: internal error")
)
