package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/labcentral/facility-service/internal/domain"
	bookingRepo "github.com/labcentral/facility-service/internal/infra/storage/booking"
	"github.com/labcentral/facility-service/internal/service/bookings/models"
)

// Service is the booking read side: listings and lookups annotated with
// the live fine amount at the moment of the request.
type Service struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService creates a new bookings service
func NewService(
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// GetByID returns one booking annotated with its current fine
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingView, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b, s.equipmentName(ctx, b.EquipmentID), s.timeProvider.Now()), nil
}

// List returns bookings in request order, optionally filtered by status,
// each annotated with the fine computed at the current moment
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var domainStatus *domain.BookingStatus
	if req != nil && req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status filter %q", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.List(ctx, domainStatus)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingView, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, s.equipmentName(ctx, b.EquipmentID), now))
	}

	return resp, nil
}

// equipmentName resolves the display name of an equipment reference;
// dangling references degrade to a placeholder instead of failing reads
func (s *Service) equipmentName(ctx context.Context, equipmentID string) string {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return "Unknown Equipment"
	}
	return eq.Name
}
