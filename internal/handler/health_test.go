package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/openapi"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "ok", body.Status)
}

func TestGetOpenAPI_ServesDocument(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "title: Travel Tracker API")
}

// TestRoutes_AllDocumented walks the router and checks that every path it
// serves is a path in the embedded OpenAPI document.
func TestRoutes_AllDocumented(t *testing.T) {
	routes, ok := newHTTPHandler(nil, nil, nil).(chi.Routes)
	require.True(t, ok, "Routes must return a chi router")

	doc := string(openapi.Document)
	var seen int
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen++
		assert.True(t, strings.Contains(doc, "\n  "+route+":\n"), "%s %s is not in openapi.yaml", method, route)
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, seen, 20)
}

func TestMetrics_Exposed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "travel_assistant_requests_total")
}

func TestUnknownRoute_JSON404(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/stops", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"route not found"}}`, rec.Body.String())
}
