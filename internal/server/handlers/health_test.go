package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canvassmith/internal/core/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupHealthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewHealthHandler("1.0.0")
	handler.now = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}

	router.GET("/", handler.GetRoot)
	router.GET("/health", handler.GetHealth)
	router.GET("/api/status", handler.GetStatus)
	router.GET("/api/info", handler.GetInfo)

	return router
}

func TestGetStatus_Success(t *testing.T) {
	router := setupHealthTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var response model.StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "connected", response.BackendStatus)
	assert.Equal(t, "Backend is working and connected!", response.Message)
	assert.Equal(t, "2026-08-01T12:00:00Z", response.Timestamp)

	// The probe requires exactly these field names on the wire.
	var jsonMap map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &jsonMap)
	assert.NoError(t, err)
	assert.Contains(t, jsonMap, "backend_status")
	assert.Contains(t, jsonMap, "message")
}

func TestGetHealth_Success(t *testing.T) {
	router := setupHealthTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "Backend is healthy and running", response.Message)
	assert.Equal(t, "1.0.0", response.Version)
}

func TestGetRoot_Success(t *testing.T) {
	router := setupHealthTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	assert.Equal(t, "1.0.0", response.Version)
}

func TestGetInfo_ListsEndpoints(t *testing.T) {
	router := setupHealthTestRouter()

	req, _ := http.NewRequest(http.MethodGet, "/api/info", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response model.InfoResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Canvas Smith API", response.Name)
	assert.Equal(t, "ready", response.FrontendConnection)
	assert.Equal(t, "/api/status", response.Endpoints["status"])
	assert.Equal(t, "/docs", response.Endpoints["docs"])
}
