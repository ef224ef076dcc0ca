package xai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintese/internal/config"
	"sintese/internal/domain"
	"sintese/internal/provider"
	"sintese/internal/provider/xai"
)

func testConfig() *config.Config {
	return &config.Config{
		APIs:     config.APIConfig{XAI: "test-xai-key"},
		Provider: config.ProviderConfig{TimeoutSecs: 30},
	}
}

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-xai-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"status_atual\":\"sentença\"}"}}]}`))
	}))
	defer server.Close()

	c, err := xai.NewClientWithEndpoint(testConfig(), server.URL)
	require.NoError(t, err)

	out, err := c.Complete(context.Background(), "texto")
	require.NoError(t, err)
	assert.Equal(t, `{"status_atual":"sentença"}`, out)
}

func TestClient_Complete_RateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c, err := xai.NewClientWithEndpoint(testConfig(), server.URL)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "texto")

	var rlErr *provider.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "xai", rlErr.Provider)
}

func TestNewClient_MissingKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIs.XAI = ""

	_, err := xai.NewClient(cfg)
	assert.ErrorIs(t, err, domain.ErrAPIKeyMissing)
}
