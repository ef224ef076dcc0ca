package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sintese/internal/config"
	"sintese/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
	assert.Equal(t, "llama3.1:8b-instruct-q4_K_M", cfg.Ollama.Model)
	assert.Equal(t, "gemini-2.5-flash", cfg.Google.Model)
	assert.Equal(t, domain.ProviderGoogle, cfg.DefaultMode)
	assert.Equal(t, 120*time.Second, cfg.Provider.Timeout())
	assert.Equal(t, 60*time.Second, cfg.Provider.RetryWait())
	assert.Empty(t, cfg.APIs.Google)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
apis:
  anthropic: file-key
ollama:
  host: http://10.0.0.5:11434
chunk:
  local_tokens: 2000
default_mode: anthropic
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sintese.yaml"), []byte(yaml), 0o644))

	cfg, err := config.Load("", dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIs.Anthropic)
	assert.Equal(t, "http://10.0.0.5:11434", cfg.Ollama.Host)
	assert.Equal(t, 2000, cfg.Chunk.LocalTokens)
	assert.Equal(t, domain.ProviderAnthropic, cfg.DefaultMode)
	// Untouched keys keep their defaults.
	assert.Equal(t, 50000, cfg.Chunk.CloudTokens)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sintese.yaml"), []byte("apis:\n  google: from-file\n"), 0o644))
	t.Setenv("SINTESE_APIS_GOOGLE", "from-env")

	cfg, err := config.Load("", dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIs.Google)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestChunkConfig_MaxChars(t *testing.T) {
	c := config.ChunkConfig{LocalTokens: 6000, CloudTokens: 50000, CharsPerToken: 4}

	assert.Equal(t, 24000, c.MaxChars(domain.ProviderLocal))
	assert.Equal(t, 200000, c.MaxChars(domain.ProviderGoogle))
}

func TestAPIConfig_Key(t *testing.T) {
	a := config.APIConfig{Google: "g", Anthropic: "a", OpenAI: "o", XAI: "x"}

	assert.Equal(t, "g", a.Key(domain.ProviderGoogle))
	assert.Equal(t, "a", a.Key(domain.ProviderAnthropic))
	assert.Equal(t, "o", a.Key(domain.ProviderOpenAI))
	assert.Equal(t, "x", a.Key(domain.ProviderXAI))
	assert.Empty(t, a.Key(domain.ProviderLocal))
}
