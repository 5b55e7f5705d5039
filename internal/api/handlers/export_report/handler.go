package export_report

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labcentral/facility-service/internal/api/handlers"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	useCase ExportReportUseCase
	logger  Logger
}

func NewHandler(useCase ExportReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /reports/bookings - Failed to export report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /reports/bookings - Failed to write report body: %v", err)
	}
}
