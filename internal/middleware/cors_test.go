package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-tracker/internal/middleware"
)

const expoOrigin = "http://localhost:8081"

// okHandler always returns 200.
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{expoOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/trips/upcoming", nil)
	req.Header.Set("Origin", expoOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, expoOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// Browsers preflight PUT and DELETE, which the trip edit and chat log screens use.
func TestCORSHandler_Preflight(t *testing.T) {
	h := middleware.NewCORSHandler([]string{expoOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/trips/3", nil)
	req.Header.Set("Origin", expoOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	// rs/cors compares requested headers in lowercase, as the browsers send them.
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, expoOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestCORSHandler_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{expoOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/chat/logs", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
