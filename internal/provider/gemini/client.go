package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"sintese/internal/config"
	"sintese/internal/domain"
	"sintese/internal/port"
	"sintese/internal/provider"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

func init() {
	provider.Register(domain.ProviderGoogle, func(cfg *config.Config) (port.TextCompleter, error) {
		return NewClient(cfg)
	})
}

// Client implements port.TextCompleter using Google's Gemini API.
//
// Requests are paced client-side: the free tier allows roughly 15 requests
// per minute, so consecutive calls keep a minimum spacing regardless of how
// fast chunks are produced.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client

	pace     time.Duration
	mu       sync.Mutex
	lastCall time.Time
}

// NewClient creates a Gemini-backed completer.
func NewClient(cfg *config.Config) (*Client, error) {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.Config, endpoint string) (*Client, error) {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.Config, endpoint string) (*Client, error) {
	apiKey := cfg.APIs.Key(domain.ProviderGoogle)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: google", domain.ErrAPIKeyMissing)
	}
	model := cfg.Google.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := cfg.Provider.Timeout()
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		pace:     time.Duration(cfg.Google.PaceIntervalSecs) * time.Second,
	}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.waitPace(ctx); err != nil {
		return "", err
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":      0.2,
			"responseMimeType": "application/json",
			"maxOutputTokens":  16384,
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
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling gemini API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := provider.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", provider.NewRateLimitError("google", baseErr, retryAfter)
		}
		return "", baseErr
	}

	return parseResponse(respBody)
}

// waitPace blocks until the minimum spacing since the previous request has
// elapsed. Holding the mutex across the wait serializes concurrent callers.
func (c *Client) waitPace(ctx context.Context) error {
	if c.pace <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if wait := c.pace - time.Since(c.lastCall); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	c.lastCall = time.Now()
	return nil
}

// apiResponse models the Gemini generateContent response.
type apiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseResponse(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrEmptyResponse
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
