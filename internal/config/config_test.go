package config

import (
	"testing"

	"translateapi/internal/core"
)

func TestLoadServerConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "INFERENCE_URL", "LANGUAGE_PAIRS_PATH", "EAGER_LOAD_MODELS", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadServerConfigFromEnv(&core.NopLogger{})
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv failed: %v", err)
	}

	if cfg.Port != core.DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, core.DefaultPort)
	}
	if cfg.InferenceURL != "http://localhost:8080" {
		t.Errorf("InferenceURL = %q", cfg.InferenceURL)
	}
	if cfg.EagerLoad {
		t.Error("EagerLoad should default to false")
	}
	if cfg.RateLimit != core.DefaultRateLimit {
		t.Errorf("RateLimit = %d, want %d", cfg.RateLimit, core.DefaultRateLimit)
	}
	if cfg.PairsConfigPath != "" {
		t.Errorf("PairsConfigPath = %q, want empty", cfg.PairsConfigPath)
	}
}

func TestLoadServerConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("INFERENCE_URL", "http://runtime:7000")
	t.Setenv("LANGUAGE_PAIRS_PATH", "/etc/translateapi/pairs.json")
	t.Setenv("EAGER_LOAD_MODELS", "true")
	t.Setenv("RATE_LIMIT", "30")

	cfg, err := LoadServerConfigFromEnv(&core.NopLogger{})
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv failed: %v", err)
	}

	if cfg.Port != "9100" || cfg.GinMode != "release" {
		t.Errorf("Port/GinMode = %q/%q", cfg.Port, cfg.GinMode)
	}
	if cfg.InferenceURL != "http://runtime:7000" {
		t.Errorf("InferenceURL = %q", cfg.InferenceURL)
	}
	if cfg.PairsConfigPath != "/etc/translateapi/pairs.json" {
		t.Errorf("PairsConfigPath = %q", cfg.PairsConfigPath)
	}
	if !cfg.EagerLoad {
		t.Error("EagerLoad should be true")
	}
	if cfg.RateLimit != 30 {
		t.Errorf("RateLimit = %d, want 30", cfg.RateLimit)
	}
}

func TestLoadServerConfigFromEnv_EagerLoadVariants(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"TRUE", true},
		{"false", false},
		{"0", false},
		{"not-a-bool", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("EAGER_LOAD_MODELS", tt.value)
			cfg, err := LoadServerConfigFromEnv(&core.NopLogger{})
			if err != nil {
				t.Fatalf("LoadServerConfigFromEnv failed: %v", err)
			}
			if cfg.EagerLoad != tt.want {
				t.Errorf("EAGER_LOAD_MODELS=%q parsed as %v, want %v", tt.value, cfg.EagerLoad, tt.want)
			}
		})
	}
}

func TestDefaultHTTPClientSettings(t *testing.T) {
	settings := DefaultHTTPClientSettings()
	if settings.MaxIdleConns <= 0 || settings.RequestTimeout <= 0 {
		t.Errorf("Unexpected defaults: %+v", settings)
	}
}
