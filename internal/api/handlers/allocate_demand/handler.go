package allocate_demand

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
	"github.com/m04kA/SMC-CapacityService/internal/domain"
	allocateDemand "github.com/m04kA/SMC-CapacityService/internal/usecase/allocate_demand"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD или DD/MM/YYYY"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase AllocateDemandUseCase
	logger  Logger
}

func NewHandler(useCase AllocateDemandUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations
// Распределяет пакет спроса по слотам, ничего не персистит:
// сохранение принятых элементов как claim'ов остается за вызывающим
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /allocations - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(&req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDateFormat) {
			h.logger.Warn("POST /allocations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Warn("POST /allocations - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, allocateDemand.ErrInvalidInput):
			h.logger.Warn("POST /allocations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /allocations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /allocations - OK: items=%d, dropped=%d", len(result.Items), len(result.Dropped))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
