package engine

import (
	"context"
	"net/http"

	"translateapi/internal/core"
)

// Loader constructs a model handle for a language pair. The expensive work
// (weights, tokenizer, device placement) happens inside the inference
// runtime; Load returns once the model is resident and ready.
type Loader interface {
	Load(ctx context.Context, pair core.LanguagePair, modelID string) (*ModelHandle, error)
}

// RuntimeLoader loads models through the inference runtime HTTP API.
type RuntimeLoader struct {
	runtimeClient
}

// NewRuntimeLoader creates a loader against the runtime at baseURL.
func NewRuntimeLoader(baseURL string, client *http.Client, logger core.Logger) *RuntimeLoader {
	return &RuntimeLoader{runtimeClient: newRuntimeClient(baseURL, client, logger)}
}

type loadRequest struct {
	Model string `json:"model"`
}

type loadResponse struct {
	Session string `json:"session_id"`
	Device  string `json:"device"`
}

// Load warms the model in the runtime and returns its handle.
func (l *RuntimeLoader) Load(ctx context.Context, pair core.LanguagePair, modelID string) (*ModelHandle, error) {
	l.logger.Info("Loading model for %s: %s", pair, modelID)

	var resp loadResponse
	if err := l.postJSON(ctx, core.RuntimeLoadPath, loadRequest{Model: modelID}, &resp); err != nil {
		return nil, err
	}

	l.logger.Info("Model for %s loaded on device %s", pair, resp.Device)
	return NewHandle(pair, modelID, resp.Session), nil
}
