package handlers

import (
	"net/http"
	"time"

	"canvassmith/internal/core/model"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the health and status endpoints.
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler creates a health handler reporting the given version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		version: version,
		now:     time.Now,
	}
}

func (h *HealthHandler) timestamp() string {
	return h.now().Format(time.RFC3339)
}

// GetRoot handles GET / and confirms the backend is up.
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "success",
		Message:   "Canvas Smith Backend is working!",
		Timestamp: h.timestamp(),
		Version:   h.version,
	})
}

// GetHealth handles GET /health for monitoring.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:    "healthy",
		Message:   "Backend is healthy and running",
		Timestamp: h.timestamp(),
		Version:   h.version,
	})
}

// GetStatus handles GET /api/status, the endpoint the desktop client's
// connectivity probe polls.
func (h *HealthHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, model.StatusResponse{
		BackendStatus: "connected",
		Message:       "Backend is working and connected!",
		Timestamp:     h.timestamp(),
	})
}

// GetInfo handles GET /api/info and describes the API surface.
func (h *HealthHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, model.InfoResponse{
		Name:        "Canvas Smith API",
		Version:     h.version,
		Description: "Backend API for the Canvas Smith application",
		Endpoints: map[string]string{
			"root":   "/",
			"health": "/health",
			"status": "/api/status",
			"info":   "/api/info",
			"docs":   "/docs",
		},
		FrontendConnection: "ready",
		Timestamp:          h.timestamp(),
	})
}
