package server

import (
	"net/http"
	"os"

	"canvassmith/internal/server/handlers"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (server *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(Version)

	server.router.GET("/", healthHandler.GetRoot)
	server.router.GET("/health", healthHandler.GetHealth)

	api := server.router.Group("/api")
	{
		api.GET("/status", healthHandler.GetStatus)
		api.GET("/info", healthHandler.GetInfo)
	}

	if server.config.ServeFrontend {
		if info, err := os.Stat(server.config.StaticDir); err == nil && info.IsDir() {
			staticHandler := handlers.NewStaticHandler(server.config.StaticDir)
			server.router.NoRoute(staticHandler.ServeSPA)
			return
		}
		log.Warnf("static dir %q missing, frontend serving disabled", server.config.StaticDir)
	}

	server.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
}
