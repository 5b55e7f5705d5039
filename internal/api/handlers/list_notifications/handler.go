package list_notifications

import (
	"net/http"

	"github.com/labcentral/facility-service/internal/api/handlers"
)

type Handler struct {
	gateway NotificationGateway
	logger  Logger
}

func NewHandler(gateway NotificationGateway, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	records, err := h.gateway.List(r.Context())
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(records)),
	}
	for _, rec := range records {
		response.Notifications = append(response.Notifications, FromDomain(rec))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
