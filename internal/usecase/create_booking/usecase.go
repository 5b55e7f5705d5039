package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/labcentral/facility-service/internal/domain"
	equipmentRepo "github.com/labcentral/facility-service/internal/infra/storage/equipment"
)

// UseCase creates a booking request.
//
// A new booking always enters PENDING; equipment status is untouched
// here and catches up on the next availability tick. The requester gets
// a "request received" notification queued on the gateway.
type UseCase struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	gateway       NotificationGateway
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase creates a new create-booking use case
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
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute validates the request and appends a new PENDING booking
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: equipment=%s, faculty=%s, window=%s..%s",
		req.EquipmentID, req.FacultyName,
		req.StartTime.Format(domain.DateFormat), req.EndTime.Format(domain.DateFormat))

	// 1. Validate before any mutation: a rejected request leaves no trace
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. The referenced equipment must exist
	eq, err := uc.equipmentRepo.GetByID(ctx, req.EquipmentID)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			uc.logger.Warn("CreateBooking: equipment id=%s not found", req.EquipmentID)
			return nil, ErrEquipmentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get equipment id=%s: %v", req.EquipmentID, err)
		return nil, fmt.Errorf("%w: failed to get equipment: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Append the PENDING booking
	booking := &domain.Booking{
		ID:             "bk-" + uuid.NewString(),
		EquipmentID:    eq.ID,
		FacultyName:    req.FacultyName,
		Department:     req.Department,
		WhatsAppNumber: req.WhatsAppNumber,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Purpose:        req.Purpose,
		Status:         domain.StatusPending,
		RequestedAt:    now,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 4. Queue the acknowledgement. A gateway failure does not undo the
	// booking; the request itself is already accepted.
	ack := fmt.Sprintf("System: Request for %s received. Waiting for admin approval.", eq.Name)
	if _, err := uc.gateway.Send(ctx, created.WhatsAppNumber, ack, domain.NotificationQueued); err != nil {
		uc.logger.Error("CreateBooking: failed to queue acknowledgement for booking %s: %v", created.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:             created.ID,
		EquipmentID:    created.EquipmentID,
		EquipmentName:  eq.Name,
		FacultyName:    created.FacultyName,
		Department:     created.Department,
		WhatsAppNumber: created.WhatsAppNumber,
		Purpose:        created.Purpose,
		StartTime:      created.StartTime,
		EndTime:        created.EndTime,
		Status:         string(created.Status),
		RequestedAt:    created.RequestedAt,
	}, nil
}
