package config

import (
	"time"

	"translateapi/internal/core"
	"translateapi/internal/engine"
	"translateapi/internal/util"
)

// ServerConfig server configuration
type ServerConfig struct {
	Port    string
	GinMode string

	// InferenceURL is the base URL of the external inference runtime that
	// hosts the pretrained models.
	InferenceURL string

	// PairsConfigPath optionally overrides the built-in language pair
	// registry with a JSON table.
	PairsConfigPath string

	// EagerLoad switches the model lifecycle from lazy (load on first use)
	// to eager (load all registered pairs at startup). Read once at gateway
	// construction; no other runtime-mutable configuration exists.
	EagerLoad bool

	RateLimit          int
	HTTPClientSettings HTTPClientSettings

	Storage core.StorageInterface
	Logger  core.Logger

	// Loader and Executor override the runtime-backed implementations,
	// used by tests to substitute stubs.
	Loader   engine.Loader
	Executor engine.Executor
}

// HTTPClientSettings HTTP client configuration
type HTTPClientSettings struct {
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
	IdleConnTimeout     time.Duration
	TLSHandshakeTimeout time.Duration
	RequestTimeout      time.Duration
}

// DefaultHTTPClientSettings default HTTP client settings
func DefaultHTTPClientSettings() HTTPClientSettings {
	return HTTPClientSettings{
		MaxIdleConns:        core.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: core.HTTPMaxIdleConnsPerHost,
		MaxConnsPerHost:     core.HTTPMaxConnsPerHost,
		IdleConnTimeout:     core.HTTPIdleConnTimeout,
		TLSHandshakeTimeout: core.HTTPTLSHandshakeTimeout,
		RequestTimeout:      core.HTTPRequestTimeout,
	}
}

// LoadServerConfigFromEnv loads server config from environment variables.
func LoadServerConfigFromEnv(logger core.Logger) (ServerConfig, error) {
	inferenceURL := util.GetEnvWithDefault("INFERENCE_URL", "http://localhost:8080")
	eagerLoad := util.GetEnvBool("EAGER_LOAD_MODELS", false)

	if eagerLoad {
		logger.Info("Model loading policy: eager")
	} else {
		logger.Info("Model loading policy: lazy")
	}

	config := ServerConfig{
		Port:               util.GetEnvWithDefault("PORT", core.DefaultPort),
		GinMode:            util.GetEnvWithDefault("GIN_MODE", core.DefaultGinMode),
		InferenceURL:       inferenceURL,
		PairsConfigPath:    util.GetEnvWithDefault("LANGUAGE_PAIRS_PATH", ""),
		EagerLoad:          eagerLoad,
		RateLimit:          util.GetEnvInt("RATE_LIMIT", core.DefaultRateLimit),
		HTTPClientSettings: DefaultHTTPClientSettings(),
	}

	return config, nil
}
