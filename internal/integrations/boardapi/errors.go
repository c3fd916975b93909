package boardapi

import "errors"

var (
	// ErrGroupNotFound возвращается, когда группа не найдена на доске
	ErrGroupNotFound = errors.New("boardapi client: group not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("boardapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("boardapi client: invalid response")
)
