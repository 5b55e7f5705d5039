package decide_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/labcentral/facility-service/internal/api/handlers"
	decideBooking "github.com/labcentral/facility-service/internal/usecase/decide_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDecision    = "decision must be APPROVED or REJECTED"
	msgBookingNotFound    = "booking not found"
	msgAlreadyDecided     = "booking has already been decided"
)

type Handler struct {
	useCase DecideBookingUseCase
	logger  Logger
}

func NewHandler(useCase DecideBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req DecideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &decideBooking.Request{
		BookingID: bookingID,
		Decision:  req.Decision,
	})
	if err != nil {
		switch {
		case errors.Is(err, decideBooking.ErrInvalidDecision):
			h.logger.Warn("PATCH /bookings/{id}/decision - Invalid decision %q: booking_id=%s", req.Decision, bookingID)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, decideBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, decideBooking.ErrAlreadyDecided):
			h.logger.Warn("PATCH /bookings/{id}/decision - Already decided: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		default:
			h.logger.Error("PATCH /bookings/{id}/decision - Failed to decide booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/decision - Booking decided: booking_id=%s, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
