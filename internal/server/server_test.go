package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func performRequest(server *Server, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func TestMiddleware_RequestIDHeader(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "error"
	testServer := New(config)

	w := performRequest(testServer, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestMiddleware_CORSHeaders(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "error"
	testServer := New(config)

	w := performRequest(testServer, "/api/status")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req, _ := http.NewRequest(http.MethodOptions, "/api/status", nil)
	preflight := httptest.NewRecorder()
	testServer.Router().ServeHTTP(preflight, req)
	assert.Equal(t, 204, preflight.Code)
}

func TestMiddleware_CORSDisabled(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "error"
	config.EnableCORS = false
	testServer := New(config)

	w := performRequest(testServer, "/api/status")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
