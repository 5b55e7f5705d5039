package create_booking

import (
	"errors"
	"net/http"

	"github.com/labcentral/facility-service/internal/api/handlers"
	createBooking "github.com/labcentral/facility-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgInvalidInput       = "missing or malformed booking fields"
	msgEndBeforeStart     = "end date is before start date"
	msgExceedsMaxDuration = "booking window exceeds the 7-day limit"
	msgUnknownDepartment  = "unknown department"
	msgEquipmentNotFound  = "equipment not found"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEndBeforeStart):
			h.logger.Warn("POST /bookings - End before start: equipment=%s", req.EquipmentID)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, createBooking.ErrExceedsMaxDuration):
			h.logger.Warn("POST /bookings - Window too long: equipment=%s", req.EquipmentID)
			handlers.RespondBadRequest(w, msgExceedsMaxDuration)

		case errors.Is(err, createBooking.ErrUnknownDepartment):
			h.logger.Warn("POST /bookings - Unknown department: %q", req.Department)
			handlers.RespondBadRequest(w, msgUnknownDepartment)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: id=%s", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: equipment=%s, error=%v",
				req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, equipment=%s",
		result.ID, req.EquipmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
