package channel

import "errors"

var (
	// ErrChannelNotFound возвращается, когда канал не найден
	ErrChannelNotFound = errors.New("channel.repository: channel not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("channel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("channel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("channel.repository: failed to scan row")
)
