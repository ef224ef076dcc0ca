package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sintese/internal/config"
	"sintese/internal/domain"
	"sintese/internal/port"
	"sintese/internal/provider"
)

const defaultModel = "llama3.1:8b-instruct-q4_K_M"

func init() {
	provider.Register(domain.ProviderLocal, func(cfg *config.Config) (port.TextCompleter, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.TextCompleter against a local Ollama server. No API
// key is involved; availability depends on the daemon running.
type Client struct {
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates an Ollama-backed completer from the configured host.
func NewClient(cfg *config.Config) *Client {
	host := strings.TrimRight(cfg.Ollama.Host, "/")
	if host == "" {
		host = "http://localhost:11434"
	}
	return newClient(cfg, host+"/api/generate")
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(cfg *config.Config, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.Config, endpoint string) *Client {
	model := cfg.Ollama.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Provider.Timeout()
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"model":  c.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.2,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ollama (is the server running?): %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := provider.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
		return "", provider.NewRateLimitError("local",
			fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(respBody)), retryAfter)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseResponse(respBody)
}

// apiResponse models the non-streaming /api/generate response.
type apiResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if resp.Response == "" {
		return "", domain.ErrEmptyResponse
	}
	return resp.Response, nil
}
