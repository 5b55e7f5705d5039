package decide_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/labcentral/facility-service/internal/domain"
	bookingRepo "github.com/labcentral/facility-service/internal/infra/storage/booking"
)

const approvalTemplate = "LabCentral Alert: Hi %s, your request for %s from %s to %s has been APPROVED. Use ID: %s."

// UseCase resolves a pending booking request.
//
// Only PENDING bookings accept a decision; a repeated decision is a
// conflict, not a no-op. Approval pushes a notification to the
// requester in the SENDING state; rejection is silent.
type UseCase struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	gateway       NotificationGateway
	logger        Logger
}

// NewUseCase creates a new decide-booking use case
func NewUseCase(
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRepository,
	gateway NotificationGateway,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		gateway:       gateway,
		logger:        logger,
	}
}

// Execute applies the admin decision to a pending booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideBooking: id=%s, decision=%s", req.BookingID, req.Decision)

	decision := domain.BookingStatus(req.Decision)
	if decision != domain.StatusApproved && decision != domain.StatusRejected {
		uc.logger.Warn("DecideBooking: invalid decision %q for booking %s", req.Decision, req.BookingID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDecision, req.Decision)
	}

	// The PENDING check and the transition are one repo call, so two
	// concurrent decisions on the same booking produce one winner
	updated, err := uc.bookingRepo.Decide(ctx, req.BookingID, decision)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Warn("DecideBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrAlreadyDecided):
			uc.logger.Warn("DecideBooking: booking id=%s is already decided", req.BookingID)
			return nil, ErrAlreadyDecided
		default:
			uc.logger.Error("DecideBooking: failed to decide booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to decide booking: %v", ErrInternal, err)
		}
	}

	equipmentName := uc.equipmentName(ctx, updated.EquipmentID)

	if decision == domain.StatusApproved {
		message := fmt.Sprintf(approvalTemplate,
			updated.FacultyName,
			equipmentName,
			updated.StartTime.Format(domain.DateFormat),
			updated.EndTime.Format(domain.DateFormat),
			updated.ShortID())

		// A gateway failure does not roll back the decision
		if _, err := uc.gateway.Send(ctx, updated.WhatsAppNumber, message, domain.NotificationSending); err != nil {
			uc.logger.Error("DecideBooking: failed to send approval for booking %s: %v", updated.ID, err)
		}
	}

	uc.logger.Info("DecideBooking: booking id=%s is now %s", updated.ID, updated.Status)

	return &Response{
		ID:            updated.ID,
		EquipmentID:   updated.EquipmentID,
		EquipmentName: equipmentName,
		FacultyName:   updated.FacultyName,
		Status:        string(updated.Status),
	}, nil
}

func (uc *UseCase) equipmentName(ctx context.Context, id string) string {
	eq, err := uc.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Warn("DecideBooking: failed to get equipment id=%s: %v", id, err)
		return "Unknown Equipment"
	}
	return eq.Name
}
