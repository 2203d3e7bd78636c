// Package engine owns the model lifecycle: loading models into the external
// inference runtime, caching the resulting handles per language pair, and
// executing translation calls against loaded handles.
package engine

import (
	"translateapi/internal/core"
)

// ModelHandle is an opaque reference to a model loaded in the inference
// runtime for one specific language pair. Handles are created on first
// successful load, never mutated afterwards, and owned exclusively by the
// Cache.
type ModelHandle struct {
	pair    core.LanguagePair
	modelID string
	session string
}

// Pair returns the language pair this handle serves.
func (h *ModelHandle) Pair() core.LanguagePair {
	return h.pair
}

// ModelID returns the pretrained model identifier behind this handle.
func (h *ModelHandle) ModelID() string {
	return h.modelID
}

// Session returns the runtime session identifier of the loaded model.
func (h *ModelHandle) Session() string {
	return h.session
}

// NewHandle constructs a handle. Exposed for substitute loaders in tests;
// production handles come from RuntimeLoader.
func NewHandle(pair core.LanguagePair, modelID, session string) *ModelHandle {
	return &ModelHandle{pair: pair, modelID: modelID, session: session}
}
