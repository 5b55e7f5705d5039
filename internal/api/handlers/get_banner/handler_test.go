package get_banner

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcentral/facility-service/internal/domain"
	notificationsService "github.com/labcentral/facility-service/internal/service/notifications"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubGateway struct{ banner *notificationsService.Banner }

func (g *stubGateway) Banner() *notificationsService.Banner { return g.banner }

func TestHandle_NoBannerIsNoContent(t *testing.T) {
	h := NewHandler(&stubGateway{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notifications/banner", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_VisibleBanner(t *testing.T) {
	h := NewHandler(&stubGateway{banner: &notificationsService.Banner{
		RecordID: "wa-1",
		To:       "+91 98765 43210",
		Message:  "System: Request for Thermal Cycler (PCR) received. Waiting for admin approval.",
		Link:     "https://wa.me/919876543210?text=hello",
		Status:   domain.NotificationDelivered,
	}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/notifications/banner", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp BannerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "wa-1", resp.RecordID)
	assert.Equal(t, "DELIVERED", resp.Status)
}
