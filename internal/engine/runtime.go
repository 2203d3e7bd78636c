package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"translateapi/internal/core"
	"translateapi/internal/util"
)

// runtimeClient is the shared HTTP plumbing for the inference runtime API.
type runtimeClient struct {
	baseURL string
	client  *http.Client
	logger  core.Logger
}

func newRuntimeClient(baseURL string, client *http.Client, logger core.Logger) runtimeClient {
	return runtimeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// postJSON sends a JSON payload to the runtime and decodes the JSON
// response into out. Non-200 responses become errors carrying the upstream
// status and body.
func (rc runtimeClient) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := util.MarshalJSON(payload)
	if err != nil {
		return fmt.Errorf("marshal runtime payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rc.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create runtime request: %w", err)
	}
	req.Header.Set(core.HeaderContentType, core.ContentTypeJSON)

	resp, err := rc.client.Do(req)
	if err != nil {
		return fmt.Errorf("runtime %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, core.MaxResponseBodySize))
	if err != nil {
		return fmt.Errorf("runtime %s: read response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		rc.logger.Error("Runtime error: path=%s status=%d body=%s", path, resp.StatusCode, string(data))
		return fmt.Errorf("runtime %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := util.UnmarshalJSON(data, out); err != nil {
		return fmt.Errorf("runtime %s: decode response: %w", path, err)
	}
	return nil
}
