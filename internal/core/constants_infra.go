package core

import "time"

// Server defaults.
const (
	DefaultPort    = "8000"
	DefaultGinMode = "release"
)

// HTTP client config constants.
const (
	HTTPMaxIdleConns          = 100
	HTTPMaxIdleConnsPerHost   = 20
	HTTPMaxConnsPerHost       = 50
	HTTPIdleConnTimeout       = 600 * time.Second
	HTTPTLSHandshakeTimeout   = 30 * time.Second
	HTTPResponseHeaderTimeout = 30 * time.Second
	HTTPExpectContinueTimeout = 5 * time.Second
	// Model loads and beam search against the runtime can take a while.
	HTTPRequestTimeout = 5 * time.Minute
)

// Result cache config constants.
const (
	CacheDefaultCapacity = 1000
	CacheCleanupInterval = 5 * time.Minute
	ResultCacheTTL       = 10 * time.Minute
	CacheKeyVersion      = "v1"
)

// Stats and monitoring constants.
const (
	StatsFilePath        = "stats.json"
	MinSaveInterval      = 5 * time.Second
	HistoryBufferSize    = 1000
	HistoryBatchSize     = 100
	HistoryFlushInterval = 100 * time.Millisecond
)

// Response body size limits.
const (
	MaxRequestBodySize  = 1 << 20
	MaxResponseBodySize = 10 * 1024 * 1024
)

// File permission constants.
const (
	FilePermissionReadWrite = 0o644
)

// Rate limiting defaults.
const (
	DefaultRateLimit = 120
)

// Logging constants.
const (
	MaxDebugFilePathLength = 255
)
