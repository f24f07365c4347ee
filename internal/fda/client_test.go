package fda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
  "results": [
    {
      "safetyreportid": "100001",
      "patient": {"reaction": [{"reactionmeddrapt": "Nausea"}, {"reactionmeddrapt": "Headache"}]}
    },
    {
      "patient": {"reaction": [{}]}
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("OPENFDA_API_URL", srv.URL)
	return NewClient()
}

func TestFetchFormatsSummaries(t *testing.T) {
	var gotSearch, gotLimit string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSearch = r.URL.Query().Get("search")
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(samplePayload))
	})

	events, err := client.Fetch(context.Background(), "Aspirin")
	require.NoError(t, err)
	assert.Equal(t, `patient.drug.medicinalproduct:"Aspirin"`, gotSearch)
	assert.Equal(t, "5", gotLimit)
	require.Len(t, events, 2)
	assert.Equal(t, "Report 100001: Nausea, Headache", events[0])
	// Missing report ID and reaction term get placeholder values.
	assert.Equal(t, "Report N/A: Unknown", events[1])
}

func TestFetchErrorOnBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	_, err := client.Fetch(context.Background(), "Aspirin")
	assert.Error(t, err)
}

func TestFetchErrorOnEmptyResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})
	_, err := client.Fetch(context.Background(), "Aspirin")
	assert.Error(t, err)
}

func TestFetchErrorOnMissingResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": "NOT_FOUND"}}`))
	})
	_, err := client.Fetch(context.Background(), "Obscuratol")
	assert.Error(t, err)
}

func TestFetchErrorOnMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	})
	_, err := client.Fetch(context.Background(), "Aspirin")
	assert.Error(t, err)
}
