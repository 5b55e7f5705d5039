package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
	"github.com/labcentral/facility-service/pkg/metrics"
)

// Service derives live equipment statuses from the booking set.
type Service struct {
	equipmentRepo EquipmentRepository
	bookingRepo   BookingRepository
	collectors    *metrics.Metrics // optional, nil when metrics disabled
	logger        Logger
}

// NewService creates a new availability resolver
func NewService(
	equipmentRepo EquipmentRepository,
	bookingRepo BookingRepository,
	collectors *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
		collectors:    collectors,
		logger:        logger,
	}
}

// Resolve recomputes every equipment status at the given moment.
//
// MAINTENANCE is sticky: it is entered and left manually, never by the
// resolver. Every other item becomes IN_USE when an approved booking's
// window contains now (inclusive bounds), AVAILABLE otherwise. When
// several approved bookings overlap the first match wins; the outcome
// is IN_USE either way.
func (s *Service) Resolve(ctx context.Context, now time.Time) error {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: Resolve - list equipment: %v", ErrInternal, err)
	}

	approved := domain.StatusApproved
	bookings, err := s.bookingRepo.List(ctx, &approved)
	if err != nil {
		return fmt.Errorf("%w: Resolve - list bookings: %v", ErrInternal, err)
	}

	counts := make(map[domain.EquipmentStatus]int, 4)

	for _, item := range items {
		if item.InMaintenance() {
			counts[domain.EquipmentMaintenance]++
			continue
		}

		desired := domain.EquipmentAvailable
		for _, b := range bookings {
			if b.EquipmentID == item.ID && b.Occupies(now) {
				desired = domain.EquipmentInUse
				break
			}
		}
		counts[desired]++

		if item.Status == desired {
			continue
		}
		if err := s.equipmentRepo.UpdateStatus(ctx, item.ID, desired); err != nil {
			return fmt.Errorf("%w: Resolve - update %s: %v", ErrInternal, item.ID, err)
		}
		s.logger.Info("Availability: %s (%s) -> %s", item.ID, item.Name, desired)
	}

	if s.collectors != nil {
		for _, status := range []domain.EquipmentStatus{
			domain.EquipmentAvailable,
			domain.EquipmentInUse,
			domain.EquipmentMaintenance,
		} {
			s.collectors.EquipmentByStatus.WithLabelValues(string(status)).Set(float64(counts[status]))
		}
	}

	return nil
}
