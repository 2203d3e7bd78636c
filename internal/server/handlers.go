package server

import (
	"fmt"
	"net/http"
	"time"

	"translateapi/internal/core"

	"github.com/gin-gonic/gin"
)

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, core.HealthResponse{
		Status:                 "healthy",
		SupportedLanguagePairs: s.gateway.SupportedPairs(),
		LoadedModels:           s.gateway.LoadedPairs(),
	})
}

func (s *Server) supportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, s.gateway.SupportedLanguages())
}

func (s *Server) translate(c *gin.Context) {
	start := time.Now()
	defer func() { s.metricsService.RecordHTTPRequest(time.Since(start)) }()

	var body core.TranslateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondWithBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := s.gateway.Translate(c.Request.Context(), body.Text, body.SourceLang, body.TargetLang)
	if err != nil {
		respondWithError(c, s.config.Logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) translateBatch(c *gin.Context) {
	start := time.Now()
	defer func() { s.metricsService.RecordHTTPRequest(time.Since(start)) }()

	var body core.BatchTranslateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondWithBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := s.gateway.TranslateBatch(c.Request.Context(), body.Texts, body.SourceLang, body.TargetLang)
	if err != nil {
		respondWithError(c, s.config.Logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) getStatsData(c *gin.Context) {
	stats := s.metricsService.GetStats()
	hits, misses := s.metricsService.CacheStats()

	c.JSON(http.StatusOK, gin.H{
		"currentTime":        time.Now().Format("2006-01-02 15:04:05"),
		"currentQPS":         fmt.Sprintf("%.3f", s.metricsService.GetQPS()),
		"totalRequests":      stats.TotalRequests,
		"successfulRequests": stats.SuccessfulRequests,
		"failedRequests":     stats.FailedRequests,
		"pairCounts":         stats.PairCounts,
		"totalRecords":       len(stats.RequestHistory),
		"cacheHits":          hits,
		"cacheMisses":        misses,
		"loadedModels":       s.gateway.LoadedPairs(),
	})
}
