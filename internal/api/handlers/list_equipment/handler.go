package list_equipment

import (
	"net/http"
	"strings"

	"github.com/labcentral/facility-service/internal/api/handlers"
	"github.com/labcentral/facility-service/internal/domain"
)

type Handler struct {
	equipment EquipmentProvider
	logger    Logger
}

func NewHandler(equipment EquipmentProvider, logger Logger) *Handler {
	return &Handler{
		equipment: equipment,
		logger:    logger,
	}
}

// Handle GET /api/v1/equipment?category=Microscopy&search=electron
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.equipment.List(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	response := EquipmentListResponse{
		Equipment: make([]EquipmentResponse, 0, len(items)),
	}
	for _, eq := range items {
		if !matches(eq, category, search) {
			continue
		}
		response.Equipment = append(response.Equipment, FromDomain(eq))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

// matches applies the inventory filters: exact category, and a
// case-insensitive substring search over name and description
func matches(eq *domain.Equipment, category, search string) bool {
	if category != "" && eq.Category != category {
		return false
	}
	if search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(eq.Name), needle) &&
			!strings.Contains(strings.ToLower(eq.Description), needle) {
			return false
		}
	}
	return true
}
