package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAsk_ReturnsAnswer(t *testing.T) {
	var captured generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "Use the SEM for surface imaging."}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model", time.Second, nopLogger{})

	answer := c.Ask(context.Background(), "What should I use for surface imaging?", []EquipmentSnapshot{
		{Name: "Scanning Electron Microscope (SEM)", Category: "Microscopy", Hours: 1240},
	})

	assert.Equal(t, "Use the SEM for surface imaging.", answer)

	// The snapshot travels inside the system instruction, reduced fields only
	require.NotNil(t, captured.SystemInstruction)
	require.NotEmpty(t, captured.SystemInstruction.Parts)
	assert.Contains(t, captured.SystemInstruction.Parts[0].Text, `"hours":1240`)
	assert.NotContains(t, captured.SystemInstruction.Parts[0].Text, "HourlyRate")
}

func TestAsk_FallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model", time.Second, nopLogger{})

	assert.Equal(t, FallbackAnswer, c.Ask(context.Background(), "anything", nil))
}

func TestAsk_FallbackOnUnreachableService(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-key", "test-model", 200*time.Millisecond, nopLogger{})

	assert.Equal(t, FallbackAnswer, c.Ask(context.Background(), "anything", nil))
}
