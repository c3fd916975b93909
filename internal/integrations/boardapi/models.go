package boardapi

// Item элемент группы board-сервиса
// Для групп-каталогов слотов name содержит метку часа ("08:00")
type Item struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GroupID string `json:"group_id"`
}

// groupItemsResponse ответ board-сервиса со списком элементов группы
// Порядок элементов повторяет порядок отображения на доске
type groupItemsResponse struct {
	Items []Item `json:"items"`
}

// ErrorResponse модель ошибки от board-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
