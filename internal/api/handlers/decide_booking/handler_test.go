package decide_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	decideBooking "github.com/labcentral/facility-service/internal/usecase/decide_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *decideBooking.Response
	err  error

	gotReq *decideBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *decideBooking.Request) (*decideBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, uc *stubUseCase, bookingID, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/decision", NewHandler(uc, nopLogger{}).Handle).
		Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/decision",
		strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Approved(t *testing.T) {
	uc := &stubUseCase{
		resp: &decideBooking.Response{
			ID:            "bk-1",
			EquipmentID:   "eq-003",
			EquipmentName: "Scanning Electron Microscope",
			FacultyName:   "Dr. Mehta",
			Status:        "APPROVED",
		},
	}

	rec := doRequest(t, uc, "bk-1", `{"decision":"APPROVED"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "bk-1", uc.gotReq.BookingID)
	assert.Equal(t, "APPROVED", uc.gotReq.Decision)

	var resp DecisionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "APPROVED", resp.Status)
	assert.Equal(t, "Scanning Electron Microscope", resp.EquipmentName)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid decision", decideBooking.ErrInvalidDecision, http.StatusBadRequest},
		{"not found", decideBooking.ErrBookingNotFound, http.StatusNotFound},
		{"already decided", decideBooking.ErrAlreadyDecided, http.StatusConflict},
		{"internal", decideBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, "bk-1", `{"decision":"APPROVED"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}
	rec := doRequest(t, uc, "bk-1", `{"decision":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}
