package engine

import (
	"context"
	"net/http"
	"strings"

	"translateapi/internal/core"
)

// Executor performs the inference call for a loaded model handle.
type Executor interface {
	Translate(ctx context.Context, handle *ModelHandle, text string) (string, error)
}

// RuntimeExecutor executes translations through the inference runtime HTTP
// API with fixed decoding parameters (tokenizer truncation at 512 tokens,
// beam width 4, early stopping). It performs no retries; retry policy
// belongs to the caller.
type RuntimeExecutor struct {
	runtimeClient
}

// NewRuntimeExecutor creates an executor against the runtime at baseURL.
func NewRuntimeExecutor(baseURL string, client *http.Client, logger core.Logger) *RuntimeExecutor {
	return &RuntimeExecutor{runtimeClient: newRuntimeClient(baseURL, client, logger)}
}

type generateRequest struct {
	Session       string `json:"session_id"`
	Model         string `json:"model"`
	Text          string `json:"text"`
	MaxLength     int    `json:"max_length"`
	NumBeams      int    `json:"num_beams"`
	EarlyStopping bool   `json:"early_stopping"`
	Truncation    bool   `json:"truncation"`
}

type generateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Translate encodes, generates and decodes through the handle's model.
// Failures are wrapped as TranslationExecutionFailed carrying the pair and
// the underlying cause.
func (e *RuntimeExecutor) Translate(ctx context.Context, handle *ModelHandle, text string) (string, error) {
	payload := generateRequest{
		Session:       handle.Session(),
		Model:         handle.ModelID(),
		Text:          text,
		MaxLength:     core.MaxTokenLength,
		NumBeams:      core.NumBeams,
		EarlyStopping: core.EarlyStopping,
		Truncation:    true,
	}

	var resp generateResponse
	if err := e.postJSON(ctx, core.RuntimeGeneratePath, payload, &resp); err != nil {
		return "", core.PairError(core.ErrTranslationExecutionFailed, handle.Pair(), err,
			"translation failed for %s", handle.Pair())
	}

	return strings.TrimSpace(resp.TranslatedText), nil
}
