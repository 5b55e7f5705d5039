package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcentral/facility-service/internal/domain"
	notificationRepo "github.com/labcentral/facility-service/internal/infra/storage/notification"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestGateway(deliveryDelay, bannerTimeout time.Duration) (*Service, *notificationRepo.Repository) {
	repo := notificationRepo.NewRepository()
	return NewService(repo, deliveryDelay, bannerTimeout, nil, nopLogger{}), repo
}

func TestSend_LifecycleSameIdentity(t *testing.T) {
	gw, repo := newTestGateway(20*time.Millisecond, time.Hour)
	defer gw.Stop()

	ctx := context.Background()
	rec, err := gw.Send(ctx, "+91 98765-43210", "hello", domain.NotificationSending)
	require.NoError(t, err)

	// Observable immediately in its entry state
	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationSending, got.Status)
	assert.Equal(t, "https://wa.me/919876543210?text=hello", got.Link)

	// DELIVERED after the delivery delay, same record id
	require.Eventually(t, func() bool {
		got, err := repo.GetByID(ctx, rec.ID)
		return err == nil && got.Status == domain.NotificationDelivered
	}, time.Second, 5*time.Millisecond)
}

func TestSend_QueuedEntryState(t *testing.T) {
	gw, repo := newTestGateway(20*time.Millisecond, time.Hour)
	defer gw.Stop()

	ctx := context.Background()
	rec, err := gw.Send(ctx, "111", "request received", domain.NotificationQueued)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationQueued, got.Status)
}

func TestLog_NewestFirst(t *testing.T) {
	gw, _ := newTestGateway(time.Hour, time.Hour)
	defer gw.Stop()

	ctx := context.Background()
	first, err := gw.Send(ctx, "111", "first", domain.NotificationQueued)
	require.NoError(t, err)
	second, err := gw.Send(ctx, "222", "second", domain.NotificationSending)
	require.NoError(t, err)

	log, err := gw.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, second.ID, log[0].ID)
	assert.Equal(t, first.ID, log[1].ID)
}

func TestBanner_TracksLatestAndAutoClears(t *testing.T) {
	gw, _ := newTestGateway(10*time.Millisecond, 30*time.Millisecond)
	defer gw.Stop()

	ctx := context.Background()
	rec, err := gw.Send(ctx, "111", "watch me", domain.NotificationSending)
	require.NoError(t, err)

	banner := gw.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, rec.ID, banner.RecordID)
	assert.Equal(t, domain.NotificationSending, banner.Status)

	// Banner follows the record to DELIVERED
	require.Eventually(t, func() bool {
		b := gw.Banner()
		return b != nil && b.Status == domain.NotificationDelivered
	}, time.Second, 2*time.Millisecond)

	// ...then auto-clears after the display timeout
	require.Eventually(t, func() bool {
		return gw.Banner() == nil
	}, time.Second, 2*time.Millisecond)

	// The log itself keeps the record
	log, err := gw.List(ctx)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, domain.NotificationDelivered, log[0].Status)
}

func TestStop_CancelsPendingTimers(t *testing.T) {
	gw, repo := newTestGateway(20*time.Millisecond, time.Hour)

	ctx := context.Background()
	rec, err := gw.Send(ctx, "111", "never delivered", domain.NotificationSending)
	require.NoError(t, err)

	gw.Stop()
	time.Sleep(60 * time.Millisecond)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationSending, got.Status, "stopped gateway must not fire delivery timers")

	_, err = gw.Send(ctx, "222", "late", domain.NotificationQueued)
	assert.ErrorIs(t, err, ErrGatewayStopped)
}
