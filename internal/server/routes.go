package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	gin.SetMode(s.ginMode)
	s.router = gin.New()

	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestIDMiddleware())
	s.router.Use(s.corsMiddleware())
	s.router.Use(s.maxBodySizeMiddleware())
	s.router.Use(s.rateLimitMiddleware())

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/supported-languages", s.supportedLanguages)
	s.router.GET("/api/stats", s.getStatsData)

	s.router.POST("/translate", s.translate)
	s.router.POST("/translate/batch", s.translateBatch)
}
