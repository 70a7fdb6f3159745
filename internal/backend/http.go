package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/blaisecz/wellness-tracker/pkg/problem"
)

// defaultTimeout bounds a single backend call.
const defaultTimeout = 10 * time.Second

// HTTPInvoker invokes backend operations as JSON POSTs against
// {baseURL}/rpc/{method}. Failures arrive as problem+json documents
// and are surfaced as *problem.Problem errors.
type HTTPInvoker struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPInvoker creates an invoker for the backend at baseURL.
func NewHTTPInvoker(baseURL string) *HTTPInvoker {
	return &HTTPInvoker{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *HTTPInvoker) Invoke(ctx context.Context, method string, params, result any) error {
	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}

	url := c.baseURL + "/rpc/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return problem.Decode(resp.Body, resp.StatusCode)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
