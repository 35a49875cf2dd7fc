package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves a built frontend directory with SPA fallback:
// exact file, else index.html, else a JSON 404.
type StaticHandler struct {
	dir string
}

// NewStaticHandler creates a static handler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// ServeSPA handles every route not claimed by the API.
func (h *StaticHandler) ServeSPA(c *gin.Context) {
	requested := filepath.Join(h.dir, filepath.Clean("/"+c.Request.URL.Path))
	if isFile(requested) {
		c.File(requested)
		return
	}

	index := filepath.Join(h.dir, "index.html")
	if isFile(index) {
		c.File(index)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
