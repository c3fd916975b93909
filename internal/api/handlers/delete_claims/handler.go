package delete_claims

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	ledgerService "github.com/m04kA/SMC-CapacityService/internal/service/ledger"
)

const (
	msgInvalidBody = "некорректное тело запроса"
	msgMissingIDs  = "список идентификаторов обязателен"
)

// DeleteClaimsRequest HTTP request model
type DeleteClaimsRequest struct {
	IDs []int64 `json:"ids"`
}

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

// Handle DELETE /api/v1/claims
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteClaimsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("DELETE /claims - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if len(req.IDs) == 0 {
		h.logger.Warn("DELETE /claims - Missing ids")
		handlers.RespondBadRequest(w, msgMissingIDs)
		return
	}

	if err := h.service.DeleteClaims(r.Context(), req.IDs); err != nil {
		if errors.Is(err, ledgerService.ErrInvalidInput) {
			h.logger.Warn("DELETE /claims - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingIDs)
			return
		}
		h.logger.Error("DELETE /claims - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /claims - Deleted %d claims", len(req.IDs))
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
