package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"sintese/internal/domain"
)

// Config holds all application configuration, loaded once per run and never
// mutated afterwards.
type Config struct {
	APIs     APIConfig
	Ollama   OllamaConfig
	Chunk    ChunkConfig
	Provider ProviderConfig
	Google   GoogleConfig
	Log      LogConfig

	DefaultMode domain.Provider
}

// APIConfig holds one API key per cloud provider.
type APIConfig struct {
	Google    string `mapstructure:"google"`
	Anthropic string `mapstructure:"anthropic"`
	OpenAI    string `mapstructure:"openai"`
	XAI       string `mapstructure:"xai"`
}

// Key returns the configured API key for a cloud provider, or "" for local.
func (a *APIConfig) Key(p domain.Provider) string {
	switch p {
	case domain.ProviderGoogle:
		return a.Google
	case domain.ProviderAnthropic:
		return a.Anthropic
	case domain.ProviderOpenAI:
		return a.OpenAI
	case domain.ProviderXAI:
		return a.XAI
	}
	return ""
}

// OllamaConfig holds the local backend settings.
type OllamaConfig struct {
	Host  string `mapstructure:"host"`
	Model string `mapstructure:"model"`
}

// ChunkConfig controls how the concatenated process text is split before
// being sent to a provider.
type ChunkConfig struct {
	LocalTokens   int     `mapstructure:"local_tokens"`
	CloudTokens   int     `mapstructure:"cloud_tokens"`
	CharsPerToken float64 `mapstructure:"chars_per_token"`
}

// MaxChars returns the chunk character budget for a provider mode.
func (c *ChunkConfig) MaxChars(p domain.Provider) int {
	tokens := c.LocalTokens
	if p.IsCloud() {
		tokens = c.CloudTokens
	}
	return int(float64(tokens) * c.CharsPerToken)
}

// ProviderConfig holds HTTP settings shared by every provider client.
type ProviderConfig struct {
	TimeoutSecs   int `mapstructure:"timeout_secs"`
	RetryWaitSecs int `mapstructure:"retry_wait_secs"`
}

// Timeout returns the HTTP client timeout.
func (p *ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSecs) * time.Second
}

// RetryWait returns the fixed wait before the single rate-limit retry.
func (p *ProviderConfig) RetryWait() time.Duration {
	return time.Duration(p.RetryWaitSecs) * time.Second
}

// GoogleConfig holds Gemini-specific settings.
type GoogleConfig struct {
	Model string `mapstructure:"model"`
	// PaceIntervalSecs is the minimum spacing between requests; the free
	// tier allows roughly 15 requests per minute.
	PaceIntervalSecs int `mapstructure:"pace_interval_secs"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads sintese.yaml (from configFile when given, otherwise searched
// in searchDirs) and merges SINTESE_-prefixed environment variables on top.
func Load(configFile string, searchDirs ...string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SINTESE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// API defaults
	v.SetDefault("apis.google", "")
	v.SetDefault("apis.anthropic", "")
	v.SetDefault("apis.openai", "")
	v.SetDefault("apis.xai", "")

	// Ollama defaults
	v.SetDefault("ollama.host", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.1:8b-instruct-q4_K_M")

	// Chunk defaults: the cloud budget assumes a large-context model.
	v.SetDefault("chunk.local_tokens", 6000)
	v.SetDefault("chunk.cloud_tokens", 50000)
	v.SetDefault("chunk.chars_per_token", 4.0)

	// Provider defaults
	v.SetDefault("provider.timeout_secs", 120)
	v.SetDefault("provider.retry_wait_secs", 60)

	// Google defaults
	v.SetDefault("google.model", "gemini-2.5-flash")
	v.SetDefault("google.pace_interval_secs", 4)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("default_mode", string(domain.ProviderGoogle))

	envBindings := map[string]string{
		"apis.google":              "SINTESE_APIS_GOOGLE",
		"apis.anthropic":           "SINTESE_APIS_ANTHROPIC",
		"apis.openai":              "SINTESE_APIS_OPENAI",
		"apis.xai":                 "SINTESE_APIS_XAI",
		"ollama.host":              "SINTESE_OLLAMA_HOST",
		"ollama.model":             "SINTESE_OLLAMA_MODEL",
		"chunk.local_tokens":       "SINTESE_CHUNK_LOCAL_TOKENS",
		"chunk.cloud_tokens":       "SINTESE_CHUNK_CLOUD_TOKENS",
		"chunk.chars_per_token":    "SINTESE_CHUNK_CHARS_PER_TOKEN",
		"provider.timeout_secs":    "SINTESE_PROVIDER_TIMEOUT_SECS",
		"provider.retry_wait_secs": "SINTESE_PROVIDER_RETRY_WAIT_SECS",
		"google.model":             "SINTESE_GOOGLE_MODEL",
		"google.pace_interval_secs": "SINTESE_GOOGLE_PACE_INTERVAL_SECS",
		"log.level":                "SINTESE_LOG_LEVEL",
		"log.format":               "SINTESE_LOG_FORMAT",
		"default_mode":             "SINTESE_DEFAULT_MODE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("sintese")
		v.SetConfigType("yaml")
		for _, dir := range searchDirs {
			v.AddConfigPath(dir)
		}
		// Absence of a config file is fine: defaults plus env cover it.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := &Config{}
	cfg.APIs = APIConfig{
		Google:    v.GetString("apis.google"),
		Anthropic: v.GetString("apis.anthropic"),
		OpenAI:    v.GetString("apis.openai"),
		XAI:       v.GetString("apis.xai"),
	}
	cfg.Ollama = OllamaConfig{
		Host:  v.GetString("ollama.host"),
		Model: v.GetString("ollama.model"),
	}
	cfg.Chunk = ChunkConfig{
		LocalTokens:   v.GetInt("chunk.local_tokens"),
		CloudTokens:   v.GetInt("chunk.cloud_tokens"),
		CharsPerToken: v.GetFloat64("chunk.chars_per_token"),
	}
	cfg.Provider = ProviderConfig{
		TimeoutSecs:   v.GetInt("provider.timeout_secs"),
		RetryWaitSecs: v.GetInt("provider.retry_wait_secs"),
	}
	cfg.Google = GoogleConfig{
		Model:            v.GetString("google.model"),
		PaceIntervalSecs: v.GetInt("google.pace_interval_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.DefaultMode = domain.Provider(v.GetString("default_mode"))

	return cfg, nil
}
