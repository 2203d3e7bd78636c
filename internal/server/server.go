package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"translateapi/internal/cache"
	"translateapi/internal/config"
	"translateapi/internal/core"
	"translateapi/internal/engine"
	"translateapi/internal/gateway"
	"translateapi/internal/metrics"
	"translateapi/internal/registry"

	"github.com/gin-gonic/gin"
)

// Server application server
type Server struct {
	port    string
	ginMode string

	router   *gin.Engine
	gateway  *gateway.Gateway
	registry *registry.Registry

	resultCache    *cache.LRUCache
	metricsService *metrics.MetricsService

	config config.ServerConfig

	rateLimiter *rateLimiter

	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewServer creates a new server instance.
func NewServer(cfg config.ServerConfig) (*Server, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required in ServerConfig")
	}
	if cfg.Storage == nil {
		return nil, fmt.Errorf("storage is required in ServerConfig")
	}

	reg, err := registry.Load(cfg.PairsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load language pair registry: %w", err)
	}
	cfg.Logger.Info("Registry loaded with %d language pairs", len(reg.Pairs()))

	httpClient := createOptimizedHTTPClient(cfg.HTTPClientSettings)

	loader := cfg.Loader
	if loader == nil {
		loader = engine.NewRuntimeLoader(cfg.InferenceURL, httpClient, cfg.Logger)
	}
	executor := cfg.Executor
	if executor == nil {
		executor = engine.NewRuntimeExecutor(cfg.InferenceURL, httpClient, cfg.Logger)
	}

	metricsService := metrics.NewMetricsService(metrics.MetricsConfig{
		SaveInterval: core.MinSaveInterval,
		HistorySize:  core.HistoryBufferSize,
		Storage:      cfg.Storage,
		Logger:       cfg.Logger,
	})

	if err := metricsService.LoadStats(); err != nil {
		cfg.Logger.Warn("Failed to load historical stats: %v", err)
	}

	resultCache := cache.NewCache()

	modelCache := engine.NewCache(reg, loader, cfg.Logger)

	gw, err := gateway.New(context.Background(), gateway.Config{
		Registry:  reg,
		Models:    modelCache,
		Executor:  executor,
		Results:   resultCache,
		Logger:    cfg.Logger,
		Metrics:   metricsService,
		EagerLoad: cfg.EagerLoad,
	})
	if err != nil {
		resultCache.Stop()
		_ = metricsService.Close()
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	rateLimit := cfg.RateLimit
	if rateLimit <= 0 {
		rateLimit = core.DefaultRateLimit
	}

	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	server := &Server{
		port:           cfg.Port,
		ginMode:        cfg.GinMode,
		gateway:        gw,
		registry:       reg,
		resultCache:    resultCache,
		metricsService: metricsService,
		config:         cfg,
		rateLimiter:    newRateLimiter(rateLimit),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	server.setupRoutes()

	return server, nil
}

func createOptimizedHTTPClient(settings config.HTTPClientSettings) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          settings.MaxIdleConns,
		MaxIdleConnsPerHost:   settings.MaxIdleConnsPerHost,
		MaxConnsPerHost:       settings.MaxConnsPerHost,
		IdleConnTimeout:       settings.IdleConnTimeout,
		TLSHandshakeTimeout:   settings.TLSHandshakeTimeout,
		ExpectContinueTimeout: core.HTTPExpectContinueTimeout,
		DisableKeepAlives:     false,
		ForceAttemptHTTP2:     true,
		ResponseHeaderTimeout: core.HTTPResponseHeaderTimeout,
		DisableCompression:    false,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   settings.RequestTimeout,
	}
}

// Run runs the server.
func (s *Server) Run() error {
	s.setupGracefulShutdown()

	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Beam search on a cold model can hold a request for a while.
		WriteTimeout: 5 * time.Minute,
	}

	go func() {
		<-s.shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			s.config.Logger.Error("Server shutdown error: %v", err)
		}
	}()

	s.config.Logger.Info("Server starting on port %s", s.port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (s *Server) setupGracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		s.config.Logger.Info("Shutdown signal received, shutting down gracefully...")
		s.shutdownCancel()
	}()
}

// Close closes the server.
func (s *Server) Close() error {
	if s.shutdownCancel != nil {
		s.shutdownCancel()
	}

	var closeErr error

	if s.metricsService != nil {
		if err := s.metricsService.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("close metrics service: %w", err))
		}
	}

	if s.resultCache != nil {
		s.resultCache.Stop()
	}

	return closeErr
}
