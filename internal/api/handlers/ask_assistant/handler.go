package ask_assistant

import (
	"net/http"

	"github.com/labcentral/facility-service/internal/api/handlers"
	"github.com/labcentral/facility-service/internal/integrations/assistant"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyQuestion      = "question is required"
)

type Handler struct {
	client    AssistantClient
	equipment EquipmentProvider
	logger    Logger
}

func NewHandler(client AssistantClient, equipment EquipmentProvider, logger Logger) *Handler {
	return &Handler{
		client:    client,
		equipment: equipment,
		logger:    logger,
	}
}

// Handle POST /api/v1/assistant/ask
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/ask - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Question == "" {
		handlers.RespondBadRequest(w, msgEmptyQuestion)
		return
	}

	// The assistant sees only a reduced catalog view, never bookings
	// or contact numbers
	snapshot := make([]assistant.EquipmentSnapshot, 0)
	items, err := h.equipment.List(r.Context())
	if err != nil {
		h.logger.Error("POST /assistant/ask - Failed to list equipment: %v", err)
	} else {
		for _, eq := range items {
			snapshot = append(snapshot, assistant.EquipmentSnapshot{
				Name:     eq.Name,
				Category: eq.Category,
				Hours:    eq.TotalUsageHours,
			})
		}
	}

	answer := h.client.Ask(r.Context(), req.Question, snapshot)

	handlers.RespondJSON(w, http.StatusOK, AskResponse{Answer: answer})
}
