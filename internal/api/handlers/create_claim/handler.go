package create_claim

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	ledgerService "github.com/m04kA/SMC-CapacityService/internal/service/ledger"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgMissingChannel  = "ID канала обязателен"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD или DD/MM/YYYY"
	msgInvalidQuantity = "количество должно быть положительным"
	msgInvalidKind     = "неизвестный вид резервирования"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/claims
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /claims - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.ChannelID == "" {
		h.logger.Warn("POST /claims - Missing channel ID")
		handlers.RespondBadRequest(w, msgMissingChannel)
		return
	}

	serviceReq, err := ToServiceRequest(&req)
	if err != nil {
		h.logger.Warn("POST /claims - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateClaim(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, ledgerService.ErrInvalidQuantity):
			h.logger.Warn("POST /claims - Invalid quantity: %d", req.Quantity)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, ledgerService.ErrInvalidKind):
			h.logger.Warn("POST /claims - Invalid kind: %s", req.Kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		case errors.Is(err, ledgerService.ErrInvalidInput):
			h.logger.Warn("POST /claims - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /claims - Failed: channel_id=%s, error=%v", req.ChannelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /claims - Created: id=%d, channel_id=%s", result.ID, result.ChannelID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
