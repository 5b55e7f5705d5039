package list_equipment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labcentral/facility-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubProvider struct{ items []*domain.Equipment }

func (p *stubProvider) List(ctx context.Context) ([]*domain.Equipment, error) {
	return p.items, nil
}

func catalog() []*domain.Equipment {
	return []*domain.Equipment{
		{ID: "eq-001", Name: "Thermal Cycler (PCR)", Category: "Molecular Biology",
			Description: "96-well gradient thermal cycler for DNA amplification."},
		{ID: "eq-003", Name: "Scanning Electron Microscope", Category: "Microscopy",
			Description: "High-resolution imaging of surface topography."},
		{ID: "eq-005", Name: "Universal Testing Machine", Category: "Mechanical Testing",
			Description: "Tensile and compression testing up to 100 kN."},
	}
}

func listWith(t *testing.T, query string) []EquipmentResponse {
	t.Helper()

	h := NewHandler(&stubProvider{items: catalog()}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipment"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp EquipmentListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Equipment
}

func ids(items []EquipmentResponse) []string {
	out := make([]string, 0, len(items))
	for _, eq := range items {
		out = append(out, eq.ID)
	}
	return out
}

func TestHandle_NoFiltersReturnsAll(t *testing.T) {
	assert.Equal(t, []string{"eq-001", "eq-003", "eq-005"}, ids(listWith(t, "")))
}

func TestHandle_CategoryFilter(t *testing.T) {
	assert.Equal(t, []string{"eq-003"}, ids(listWith(t, "?category=Microscopy")))
	assert.Empty(t, listWith(t, "?category=Spectroscopy"))
}

func TestHandle_SearchFilter(t *testing.T) {
	// Case-insensitive match on the name
	assert.Equal(t, []string{"eq-003"}, ids(listWith(t, "?search=ELECTRON")))

	// Match on the description
	assert.Equal(t, []string{"eq-001"}, ids(listWith(t, "?search=dna")))

	assert.Empty(t, listWith(t, "?search=centrifuge"))
}

func TestHandle_CombinedFilters(t *testing.T) {
	assert.Equal(t, []string{"eq-005"}, ids(listWith(t, "?category=Mechanical+Testing&search=tensile")))
	assert.Empty(t, listWith(t, "?category=Microscopy&search=dna"))
}
