package get_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CapacityService/internal/api/handlers"
)

const (
	msgMissingGroupID = "ID группы обязателен"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	GroupID string   `json:"groupId"`
	Slots   []string `json:"slots"`
}

type Handler struct {
	resolver SlotResolver
	logger   Logger
}

func NewHandler(resolver SlotResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/slot-groups/{groupId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	groupID := vars["groupId"]
	if groupID == "" {
		h.logger.Warn("GET /slot-groups/{id}/slots - Missing group ID")
		handlers.RespondBadRequest(w, msgMissingGroupID)
		return
	}

	labels, err := h.resolver.Resolve(r.Context(), groupID)
	if err != nil {
		h.logger.Error("GET /slot-groups/{id}/slots - Failed: group_id=%s, error=%v", groupID, err)
		handlers.RespondInternalError(w)
		return
	}

	slots := make([]string, len(labels))
	for i, label := range labels {
		slots[i] = label.String()
	}

	h.logger.Info("GET /slot-groups/{id}/slots - OK: group_id=%s, slots_count=%d", groupID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, &SlotsResponse{GroupID: groupID, Slots: slots})
}
