package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcentral/facility-service/internal/domain"
	bookingRepo "github.com/labcentral/facility-service/internal/infra/storage/booking"
	equipmentRepo "github.com/labcentral/facility-service/internal/infra/storage/equipment"
	"github.com/labcentral/facility-service/internal/service/bookings/models"
	"github.com/labcentral/facility-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newFixture(t *testing.T, now time.Time) (*Service, *bookingRepo.Repository) {
	t.Helper()

	eq := equipmentRepo.NewRepository()
	eq.Seed([]*domain.Equipment{{ID: "eq-001", Name: "NMR Spectrometer 400MHz"}})

	bk := bookingRepo.NewRepository()
	svc := NewService(bk, eq, nopLogger{})
	svc.timeProvider = fixedClock{now: now}
	return svc, bk
}

func TestList_AnnotatesFineAndEquipmentName(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, bk := newFixture(t, now)

	_, err := bk.Create(context.Background(), &domain.Booking{
		ID:          "bk-aaa111",
		EquipmentID: "eq-001",
		FacultyName: "Dr. Rao",
		StartTime:   now.Add(-72 * time.Hour),
		EndTime:     now.Add(-25 * time.Hour), // one whole day + 1h overdue
		Status:      domain.StatusApproved,
	})
	require.NoError(t, err)

	_, err = bk.Create(context.Background(), &domain.Booking{
		ID:          "bk-bbb222",
		EquipmentID: "eq-404",
		StartTime:   now,
		EndTime:     now.Add(24 * time.Hour),
		Status:      domain.StatusPending,
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)

	overdue := resp.Bookings[0]
	assert.Equal(t, "NMR Spectrometer 400MHz", overdue.EquipmentName)
	assert.Equal(t, 100, overdue.Fine)
	assert.True(t, overdue.IsOverdue)
	assert.Equal(t, "aaa111", overdue.ShortID)

	pending := resp.Bookings[1]
	assert.Equal(t, "Unknown Equipment", pending.EquipmentName)
	assert.Zero(t, pending.Fine)
	assert.False(t, pending.IsOverdue)
}

func TestList_StatusFilter(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, bk := newFixture(t, now)

	for id, status := range map[string]domain.BookingStatus{
		"bk-1": domain.StatusPending,
		"bk-2": domain.StatusApproved,
	} {
		_, err := bk.Create(context.Background(), &domain.Booking{
			ID: id, EquipmentID: "eq-001",
			StartTime: now, EndTime: now.Add(time.Hour), Status: status,
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("PENDING")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "PENDING", resp.Bookings[0].Status)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("SHIPPED")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newFixture(t, time.Now())

	_, err := svc.GetByID(context.Background(), "bk-missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
