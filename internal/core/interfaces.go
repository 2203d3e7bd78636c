package core

import (
	"time"
)

// Logger interface
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Fatal(format string, args ...any)
}

// Cache interface
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, duration time.Duration)
	Stop()
}

// StorageInterface persists gateway statistics.
type StorageInterface interface {
	SaveStats(stats *GatewayStats) error
	LoadStats() (*GatewayStats, error)
	Close() error
}

// MetricsCollector interface
type MetricsCollector interface {
	RecordHTTPRequest(duration time.Duration)
	RecordTranslation(pair string, success bool, duration time.Duration)
	RecordCacheHit()
	RecordCacheMiss()
	GetQPS() float64
}

// NopLogger empty logger implementation
type NopLogger struct{}

func (*NopLogger) Debug(format string, args ...any) {}
func (*NopLogger) Info(format string, args ...any)  {}
func (*NopLogger) Warn(format string, args ...any)  {}
func (*NopLogger) Error(format string, args ...any) {}
func (*NopLogger) Fatal(format string, args ...any) {}

// NopMetrics empty metrics collector implementation
type NopMetrics struct{}

func (*NopMetrics) RecordHTTPRequest(duration time.Duration)                     {}
func (*NopMetrics) RecordTranslation(pair string, success bool, d time.Duration) {}
func (*NopMetrics) RecordCacheHit()                                              {}
func (*NopMetrics) RecordCacheMiss()                                             {}
func (*NopMetrics) GetQPS() float64                                              { return 0 }
