package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-CapacityService/internal/usecase/get_availability"
)

const (
	msgMissingChannel  = "имя канала обязательно"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD или DD/MM/YYYY"
	msgInvalidInput    = "некорректные параметры запроса"
	msgChannelNotFound = "канал не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/channels/{channelName}/availability
// Query params: date (required, YYYY-MM-DD или DD/MM/YYYY),
// area (optional), context (optional, form|admin, по умолчанию form)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	channelName := vars["channelName"]
	if channelName == "" {
		h.logger.Warn("GET /channels/{name}/availability - Missing channel name")
		handlers.RespondBadRequest(w, msgMissingChannel)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /channels/{name}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	area := r.URL.Query().Get("area")
	contextStr := r.URL.Query().Get("context")

	useCaseReq, err := ToUseCaseRequest(channelName, dateStr, area, contextStr)
	if err != nil {
		h.logger.Warn("GET /channels/{name}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrChannelNotFound):
			h.logger.Warn("GET /channels/{name}/availability - Channel not found: channel=%s", channelName)
			handlers.RespondNotFound(w, msgChannelNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /channels/{name}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /channels/{name}/availability - Failed: channel=%s, error=%v", channelName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /channels/{name}/availability - OK: channel=%s, slots_count=%d",
		channelName, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
