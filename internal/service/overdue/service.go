package overdue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/labcentral/facility-service/internal/domain"
	"github.com/labcentral/facility-service/pkg/metrics"
)

const alertTemplate = "⚠️ OVERDUE ALERT: Hi %s, your access to %s has expired. A fine of $%d has been generated. Please return it immediately to avoid further charges."

// Service scans bookings for overdue conditions and dispatches at most
// one alert per booking for the lifetime of the process.
//
// The de-duplication set only ever grows. The check-then-insert around
// a send is one critical section, so overlapping scans cannot double-
// alert the same booking.
type Service struct {
	bookingRepo   BookingRepository
	equipmentRepo EquipmentRepository
	gateway       NotificationGateway
	collectors    *metrics.Metrics // optional, nil when metrics disabled
	logger        Logger

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewService creates a new overdue notifier with an empty de-duplication set
func NewService(
	bookingRepo BookingRepository,
	equipmentRepo EquipmentRepository,
	gateway NotificationGateway,
	collectors *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		gateway:       gateway,
		collectors:    collectors,
		logger:        logger,
		notified:      make(map[string]struct{}),
	}
}

// Scan walks the booking set at the given moment and alerts every newly
// overdue booking exactly once. Bookings already in the de-duplication
// set are skipped no matter how long they stay overdue.
func (s *Service) Scan(ctx context.Context, now time.Time) error {
	bookings, err := s.bookingRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: Scan - list bookings: %v", ErrInternal, err)
	}

	counts := make(map[domain.BookingStatus]int, len(bookings))
	for _, b := range bookings {
		counts[b.Status]++

		fine := domain.Fine(now, b.EndTime, b.Status)
		if fine == 0 {
			continue
		}
		if err := s.alertOnce(ctx, b, fine); err != nil {
			// One failed send must not starve other overdue bookings
			s.logger.Error("Overdue: alert for booking %s failed: %v", b.ID, err)
		}
	}

	if s.collectors != nil {
		for _, status := range []domain.BookingStatus{
			domain.StatusPending,
			domain.StatusApproved,
			domain.StatusRejected,
			domain.StatusCompleted,
			domain.StatusCancelled,
		} {
			s.collectors.BookingsByStatus.WithLabelValues(string(status)).Set(float64(counts[status]))
		}
	}

	return nil
}

// NotifiedCount returns the size of the de-duplication set
func (s *Service) NotifiedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notified)
}

// alertOnce dispatches the overdue alert unless the booking has already
// been alerted. Check, send and insert happen under one lock hold to
// keep the at-most-once guarantee when scans overlap.
func (s *Service) alertOnce(ctx context.Context, b *domain.Booking, fine int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.notified[b.ID]; seen {
		return nil
	}

	equipmentName := "Unknown Equipment"
	if eq, err := s.equipmentRepo.GetByID(ctx, b.EquipmentID); err == nil {
		equipmentName = eq.Name
	}

	message := fmt.Sprintf(alertTemplate, b.FacultyName, equipmentName, fine)
	if _, err := s.gateway.Send(ctx, b.WhatsAppNumber, message, domain.NotificationSending); err != nil {
		return err
	}

	s.notified[b.ID] = struct{}{}

	if s.collectors != nil {
		s.collectors.OverdueAlertsTotal.Inc()
	}
	s.logger.Warn("Overdue: booking %s (%s, %s) overdue, fine=$%d, alert dispatched",
		b.ID, b.FacultyName, equipmentName, fine)

	return nil
}
