package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/labcentral/facility-service/internal/domain"
	"github.com/labcentral/facility-service/internal/integrations/whatsapp"
	"github.com/labcentral/facility-service/pkg/metrics"
)

// Banner is the transient projection of the most recently sent message.
// It mirrors the live status of its record and disappears a fixed time
// after delivery; the permanent log is unaffected.
type Banner struct {
	RecordID string
	To       string
	Message  string
	Link     string
	Status   domain.NotificationStatus
}

// Service is the simulated outbound notification gateway.
//
// It owns the notification log: a record enters in its caller-chosen
// entry state (QUEUED or SENDING), is prepended to the log, and after
// the configured delivery delay transitions in place to DELIVERED.
// No real message leaves the process; the wa.me deep link on each
// record is what a human operator would click.
type Service struct {
	log           NotificationLog
	logger        Logger
	deliveryDelay time.Duration
	bannerTimeout time.Duration
	timeProvider  TimeProvider
	collectors    *metrics.Metrics // optional, nil when metrics disabled

	mu      sync.Mutex
	banner  *Banner
	timers  map[int]*time.Timer
	timerID int
	stopped bool
}

// NewService creates the gateway with the given simulated delays
func NewService(
	log NotificationLog,
	deliveryDelay time.Duration,
	bannerTimeout time.Duration,
	collectors *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		log:           log,
		logger:        logger,
		deliveryDelay: deliveryDelay,
		bannerTimeout: bannerTimeout,
		timeProvider:  &RealTimeProvider{},
		collectors:    collectors,
		timers:        make(map[int]*time.Timer),
	}
}

// Send creates a notification record in the given entry state, makes it
// the current banner and schedules its delivery transition. The record
// keeps the same identity through its whole lifecycle.
func (s *Service) Send(ctx context.Context, to, message string, entry domain.NotificationStatus) (*domain.NotificationRecord, error) {
	rec := &domain.NotificationRecord{
		ID:        "wa-" + uuid.NewString(),
		To:        to,
		Message:   message,
		Link:      whatsapp.BuildLink(to, message),
		Status:    entry,
		CreatedAt: s.timeProvider.Now(),
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil, ErrGatewayStopped
	}

	if err := s.log.Prepend(ctx, rec); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: Send - append to log: %v", ErrInternal, err)
	}

	s.banner = &Banner{
		RecordID: rec.ID,
		To:       rec.To,
		Message:  rec.Message,
		Link:     rec.Link,
		Status:   rec.Status,
	}

	s.scheduleLocked(s.deliveryDelay, func() {
		s.markDelivered(rec.ID)
	})
	s.mu.Unlock()

	if s.collectors != nil {
		s.collectors.NotificationsTotal.WithLabelValues(string(entry)).Inc()
	}

	s.logger.Info("Gateway: notification %s queued for %s (entry=%s)", rec.ID, to, entry)

	cp := *rec
	return &cp, nil
}

// List returns the notification log, newest first
func (s *Service) List(ctx context.Context) ([]*domain.NotificationRecord, error) {
	return s.log.List(ctx)
}

// Banner returns a copy of the current banner projection, or nil
func (s *Service) Banner() *Banner {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.banner == nil {
		return nil
	}
	cp := *s.banner
	return &cp
}

// Stop cancels all pending delivery and banner timers. Records that
// were still in flight stay in their current state in the log.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// markDelivered is the delivery-delay callback: the record transitions
// to DELIVERED in place, and the banner (if still showing this record)
// follows and gets its clear timer armed.
func (s *Service) markDelivered(recordID string) {
	ctx := context.Background()

	if err := s.log.UpdateStatus(ctx, recordID, domain.NotificationDelivered); err != nil {
		s.logger.Error("Gateway: deliver %s: %v", recordID, err)
		return
	}

	if s.collectors != nil {
		s.collectors.NotificationsTotal.WithLabelValues(string(domain.NotificationDelivered)).Inc()
	}
	s.logger.Info("Gateway: notification %s delivered", recordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	if s.banner != nil && s.banner.RecordID == recordID {
		s.banner.Status = domain.NotificationDelivered
		s.scheduleLocked(s.bannerTimeout, func() {
			s.clearBanner(recordID)
		})
	}
}

// clearBanner drops the banner if it still shows the given record
func (s *Service) clearBanner(recordID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.banner != nil && s.banner.RecordID == recordID {
		s.banner = nil
	}
}

// scheduleLocked arms a one-shot timer tracked for teardown.
// Caller must hold s.mu.
func (s *Service) scheduleLocked(d time.Duration, fn func()) {
	s.timerID++
	id := s.timerID
	s.timers[id] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, id)
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}
		fn()
	})
}
