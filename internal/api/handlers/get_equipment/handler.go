package get_equipment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/labcentral/facility-service/internal/api/handlers"
	equipmentRepo "github.com/labcentral/facility-service/internal/infra/storage/equipment"
)

const (
	msgEquipmentNotFound = "equipment not found"
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

// Handle GET /api/v1/equipment/{equipmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID := mux.Vars(r)["equipmentId"]

	eq, err := h.equipment.GetByID(r.Context(), equipmentID)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			h.logger.Warn("GET /equipment/{id} - Equipment not found: id=%s", equipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)
			return
		}
		h.logger.Error("GET /equipment/{id} - Failed to get equipment: id=%s, error=%v", equipmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(eq))
}
