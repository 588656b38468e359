// Package config defines service configuration structures and loading hooks.
//
// Defaults come from New; Load layers an optional YAML file and environment
// variables on top.
package config

import (
	"time"
)

// Default configuration values.
const (
	defaultAddr           = ":8000"
	defaultGeminiModel    = "gemini-1.5-flash"
	defaultAITimeoutMS    = 20_000
	defaultScoringWorkers = 4
	defaultMaxUploadBytes = 10 << 20
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`
	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// DatabaseURL is a Postgres DSN. Empty selects the in-memory store.
	DatabaseURL string `koanf:"database_url"`
	// MigrateOnStart applies pending migrations when the server boots.
	MigrateOnStart bool `koanf:"migrate_on_start"`

	// GeminiAPIKey enables the remote intent classifier when set.
	GeminiAPIKey string `koanf:"gemini_api_key"`
	// GeminiModel names the text-generation model.
	GeminiModel string `koanf:"gemini_model"`
	// GeminiBaseURL overrides the API endpoint (proxies, tests).
	GeminiBaseURL string `koanf:"gemini_base_url"`
	// AITimeoutMS bounds each external classification call.
	AITimeoutMS int `koanf:"ai_timeout_ms"`

	// PromptPath points at the classification prompt template. Empty uses the built-in one.
	PromptPath string `koanf:"prompt_path"`
	// ScoringWorkers sets how many leads are scored concurrently.
	ScoringWorkers int `koanf:"scoring_workers"`
	// MaxUploadBytes caps the size of a leads CSV upload.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           defaultAddr,
		MigrateOnStart: true,
		GeminiModel:    defaultGeminiModel,
		AITimeoutMS:    defaultAITimeoutMS,
		ScoringWorkers: defaultScoringWorkers,
		MaxUploadBytes: defaultMaxUploadBytes,
	}
}

// AITimeout returns AITimeoutMS as a duration.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutMS) * time.Millisecond
}

// UseMemoryStore reports whether no database is configured.
func (c *Config) UseMemoryStore() bool {
	return c.DatabaseURL == ""
}
