package dataset

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// LOADER TESTS
// ============================================================================

var samplePayload = []byte(`[
  {"propertyId": "P-1", "propertyName": "Capitol Annex", "city": "Sacramento",
   "grossFloorArea": "320,000", "siteEnergyUseKbtu": 9500000, "yearBuilt": 1952},
  {"propertyId": "P-2", "propertyName": "Records Center", "city": "West Sacramento",
   "grossFloorArea": 88000, "siteEnergyUseKbtu": "2,100,000", "yearBuilt": 1998}
]`)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write(samplePayload)
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), discardLogger())
	records, err := loader.Load(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Capitol Annex", records[0].PropertyName)
	assert.Equal(t, 320000.0, records[0].GrossFloorArea)
	assert.Equal(t, 2100000.0, records[1].SiteEnergyUseKbtu)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buildings.json")
	require.NoError(t, os.WriteFile(path, samplePayload, 0o644))

	loader := NewLoader(nil, discardLogger())
	records, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadMissingFileFails(t *testing.T) {
	loader := NewLoader(nil, discardLogger())
	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	loader := NewLoader(srv.Client(), discardLogger())
	_, err := loader.Load(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "404")
}

func TestDecodeRejectsNonArray(t *testing.T) {
	_, err := Decode([]byte(`{"results": []}`))
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestDecodeRejectsEmptyArray(t *testing.T) {
	_, err := Decode([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`[{"propertyId": `))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotArray)
}
