package decide_booking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcentral/facility-service/internal/domain"
	bookingRepo "github.com/labcentral/facility-service/internal/infra/storage/booking"
	equipmentRepo "github.com/labcentral/facility-service/internal/infra/storage/equipment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingGateway struct {
	mu    sync.Mutex
	sends []struct {
		to, message string
		entry       domain.NotificationStatus
	}
}

func (g *recordingGateway) Send(ctx context.Context, to, message string, entry domain.NotificationStatus) (*domain.NotificationRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sends = append(g.sends, struct {
		to, message string
		entry       domain.NotificationStatus
	}{to, message, entry})
	return &domain.NotificationRecord{ID: "wa-1"}, nil
}

func (g *recordingGateway) sent() []struct {
	to, message string
	entry       domain.NotificationStatus
} {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append(g.sends[:0:0], g.sends...)
}

func newFixture(t *testing.T) (*UseCase, *bookingRepo.Repository, *recordingGateway) {
	t.Helper()

	eq := equipmentRepo.NewRepository()
	eq.Seed([]*domain.Equipment{{ID: "eq-003", Name: "Scanning Electron Microscope"}})

	bk := bookingRepo.NewRepository()
	gw := &recordingGateway{}

	return NewUseCase(bk, eq, gw, nopLogger{}), bk, gw
}

func seedPending(t *testing.T, bk *bookingRepo.Repository) *domain.Booking {
	t.Helper()

	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	created, err := bk.Create(context.Background(), &domain.Booking{
		ID:             "bk-7f3a21c8-0000-0000-0000-0000009a4c5b",
		EquipmentID:    "eq-003",
		FacultyName:    "Dr. Mehta",
		Department:     "Materials Engineering",
		WhatsAppNumber: "+91 91234 56789",
		StartTime:      start,
		EndTime:        start.AddDate(0, 0, 2),
		Status:         domain.StatusPending,
	})
	require.NoError(t, err)
	return created
}

func TestExecute_ApproveSendsAlert(t *testing.T) {
	uc, bk, gw := newFixture(t)
	pending := seedPending(t, bk)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: pending.ID,
		Decision:  "APPROVED",
	})
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", resp.Status)

	stored, err := bk.GetByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)

	require.Len(t, gw.sends, 1)
	assert.Equal(t, "+91 91234 56789", gw.sends[0].to)
	assert.Equal(t, domain.NotificationSending, gw.sends[0].entry)
	assert.Equal(t,
		"LabCentral Alert: Hi Dr. Mehta, your request for Scanning Electron Microscope from 2024-03-04 to 2024-03-06 has been APPROVED. Use ID: 9a4c5b.",
		gw.sends[0].message)
}

func TestExecute_RejectIsSilent(t *testing.T) {
	uc, bk, gw := newFixture(t)
	pending := seedPending(t, bk)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: pending.ID,
		Decision:  "REJECTED",
	})
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	assert.Empty(t, gw.sends)
}

func TestExecute_UnknownBooking(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "bk-missing",
		Decision:  "APPROVED",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidDecision(t *testing.T) {
	uc, bk, _ := newFixture(t)
	pending := seedPending(t, bk)

	for _, decision := range []string{"", "approved", "MAYBE", "PENDING"} {
		_, err := uc.Execute(context.Background(), &Request{
			BookingID: pending.ID,
			Decision:  decision,
		})
		assert.ErrorIs(t, err, ErrInvalidDecision, "decision %q", decision)
	}
}

func TestExecute_RepeatDecisionConflicts(t *testing.T) {
	uc, bk, gw := newFixture(t)
	pending := seedPending(t, bk)

	_, err := uc.Execute(context.Background(), &Request{BookingID: pending.ID, Decision: "APPROVED"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{BookingID: pending.ID, Decision: "REJECTED"})
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	// Status and notification count are untouched by the second attempt
	stored, err := bk.GetByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)
	assert.Len(t, gw.sends, 1)
}

func TestExecute_ConcurrentDecisionsHaveOneWinner(t *testing.T) {
	uc, bk, gw := newFixture(t)
	pending := seedPending(t, bk)

	const attempts = 8

	var wg sync.WaitGroup
	var approved atomic.Int64
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				BookingID: pending.ID,
				Decision:  "APPROVED",
			})
			if err == nil {
				approved.Add(1)
			} else {
				assert.ErrorIs(t, err, ErrAlreadyDecided)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), approved.Load())
	assert.Len(t, gw.sent(), 1, "the losing decisions must not notify")

	stored, err := bk.GetByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, stored.Status)
}
