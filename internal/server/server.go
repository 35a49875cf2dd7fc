// Package server provides the Canvas Smith backend: a small JSON status
// API with optional static frontend serving, consumed by the desktop
// client's connectivity probe.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Version is reported on the health and info endpoints.
const Version = "1.0.0"

// Server wraps the gin router and the underlying HTTP listener.
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
}

// New creates a server with middleware and routes configured.
func New(config Config) *Server {
	if config.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		config: config,
		router: gin.New(),
	}
	server.setupMiddleware()
	server.setupRoutes()
	return server
}

// Start launches the HTTP listener in a background goroutine.
func (server *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", server.config.Host, server.config.Port)

	server.httpServer = &http.Server{
		Addr:         addr,
		Handler:      server.router,
		ReadTimeout:  server.config.ReadTimeout,
		WriteTimeout: server.config.WriteTimeout,
		IdleTimeout:  server.config.IdleTimeout,
	}

	log.Infof("starting backend on %s", addr)

	go func() {
		if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("backend listen failed: %v", err)
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP listener.
func (server *Server) Stop() error {
	if server.httpServer == nil {
		return nil
	}

	log.Info("shutting down backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("backend forced to shut down: %v", err)
		return err
	}

	log.Info("backend stopped")
	return nil
}

// Router returns the gin router, mainly so tests can inject requests
// without a live listener.
func (server *Server) Router() *gin.Engine {
	return server.router
}
