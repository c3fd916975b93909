package reschedule_claim

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	rescheduleClaim "github.com/m04kA/SMC-CapacityService/internal/usecase/reschedule_claim"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD или DD/MM/YYYY"
	msgInvalidInput    = "некорректные параметры запроса"
	msgInvalidKind     = "неизвестный вид резервирования"
	msgChannelNotFound = "канал не найден"
)

type Handler struct {
	useCase RescheduleClaimUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleClaimUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/claims/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /claims/reschedule - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(&req)
	if err != nil {
		h.logger.Warn("POST /claims/reschedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleClaim.ErrChannelNotFound):
			h.logger.Warn("POST /claims/reschedule - Channel not found: channel_id=%s", req.ChannelID)
			handlers.RespondNotFound(w, msgChannelNotFound)

		case errors.Is(err, rescheduleClaim.ErrInvalidKind):
			h.logger.Warn("POST /claims/reschedule - Invalid kind: %s", req.Kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, rescheduleClaim.ErrInvalidInput):
			h.logger.Warn("POST /claims/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /claims/reschedule - Failed: channel_id=%s, error=%v", req.ChannelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /claims/reschedule - OK: deleted=%d, created=%d, dropped=%d",
		len(result.DeletedIDs), len(result.Created), result.Dropped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
