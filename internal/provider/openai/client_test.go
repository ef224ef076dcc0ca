package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintese/internal/config"
	"sintese/internal/domain"
	"sintese/internal/provider"
	"sintese/internal/provider/openai"
)

func testConfig() *config.Config {
	return &config.Config{
		APIs:     config.APIConfig{OpenAI: "test-openai-key"},
		Provider: config.ProviderConfig{TimeoutSecs: 30},
	}
}

func TestClient_Complete(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"pedidos\":[]}"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	c, err := openai.NewClientWithEndpoint(testConfig(), server.URL)
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "texto")
	require.NoError(t, err)
	assert.Equal(t, `{"pedidos":[]}`, out)

	rf, ok := gotBody["response_format"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "json_object", rf["type"])
}

func TestClient_Complete_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	c, err := openai.NewClientWithEndpoint(testConfig(), server.URL)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "texto")

	var rlErr *provider.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(30*1e9), float64(rlErr.RetryAfter))
}

func TestClient_Complete_ServerErrorNotRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c, err := openai.NewClientWithEndpoint(testConfig(), server.URL)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "texto")
	require.Error(t, err)

	var rlErr *provider.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Complete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c, err := openai.NewClientWithEndpoint(testConfig(), server.URL)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "texto")
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}
