package get_banner

import (
	"net/http"

	"github.com/labcentral/facility-service/internal/api/handlers"
)

type Handler struct {
	gateway BannerProvider
	logger  Logger
}

func NewHandler(gateway BannerProvider, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications/banner.
// 204 when nothing is currently on screen.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	banner := h.gateway.Banner()
	if banner == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromServiceBanner(banner))
}
