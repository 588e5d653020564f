package ui

import (
	"io/fs"
	"net/http"

	"univar/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger(), gin.Recovery())
	s.router.Use(middleware.EnsureSession(s.cfg.Session.TTL))

	staticFS, err := fs.Sub(s.embeddedFiles, "static")
	if err != nil {
		s.logger.Warn("no static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}
