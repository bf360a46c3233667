package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults applied before the config file and environment are consulted.
const (
	DefaultTranscribeModel = "gpt-4o-transcribe"
	DefaultLanguage        = "pt"
	DefaultResponseFormat  = "json"
	DefaultSummaryModel    = "gpt-4o-mini"
	DefaultGeminiModel     = "gemini-2.5-flash"
	DefaultTemperature     = 0.2
	DefaultTimeout         = 120 * time.Second
	DefaultMaxRetries      = 3
)

// Summary providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ErrMissingCredential marks configuration errors caused by an absent API
// key. The CLI maps it to its own exit code, and it is always raised before
// any network call.
var ErrMissingCredential = errors.New("missing API credential")

type Config struct {
	OpenAIAPIKey string
	GeminiAPIKey string

	Timeout    time.Duration
	MaxRetries int

	TranscribeModel string
	Language        string
	ResponseFormat  string

	SummaryProvider string // "openai" or "gemini"
	SummaryModel    string
	GeminiModel     string
	Temperature     float64
}

type fileConfig struct {
	OpenAIAPIKey    string   `toml:"openai_api_key"`
	GeminiAPIKey    string   `toml:"gemini_api_key"`
	TimeoutSeconds  float64  `toml:"timeout_seconds"`
	MaxRetries      *int     `toml:"max_retries"`
	TranscribeModel string   `toml:"transcribe_model"`
	Language        string   `toml:"language"`
	ResponseFormat  string   `toml:"response_format"`
	SummaryProvider string   `toml:"summary_provider"`
	SummaryModel    string   `toml:"summary_model"`
	GeminiModel     string   `toml:"gemini_model"`
	Temperature     *float64 `toml:"summary_temperature"`
}

// Load builds the configuration from defaults, then the TOML config file
// (if present), then environment variable overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Timeout:         DefaultTimeout,
		MaxRetries:      DefaultMaxRetries,
		TranscribeModel: DefaultTranscribeModel,
		Language:        DefaultLanguage,
		ResponseFormat:  DefaultResponseFormat,
		SummaryProvider: ProviderOpenAI,
		SummaryModel:    DefaultSummaryModel,
		GeminiModel:     DefaultGeminiModel,
		Temperature:     DefaultTemperature,
	}

	if path := configFilePath(); path != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		applyFile(cfg, &fc)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyFile(cfg *Config, fc *fileConfig) {
	if fc.OpenAIAPIKey != "" {
		cfg.OpenAIAPIKey = fc.OpenAIAPIKey
	}
	if fc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = fc.GeminiAPIKey
	}
	if fc.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.TimeoutSeconds * float64(time.Second))
	}
	if fc.MaxRetries != nil && *fc.MaxRetries >= 0 {
		cfg.MaxRetries = *fc.MaxRetries
	}
	if fc.TranscribeModel != "" {
		cfg.TranscribeModel = fc.TranscribeModel
	}
	if fc.Language != "" {
		cfg.Language = fc.Language
	}
	if fc.ResponseFormat != "" {
		cfg.ResponseFormat = fc.ResponseFormat
	}
	if fc.SummaryProvider != "" {
		cfg.SummaryProvider = fc.SummaryProvider
	}
	if fc.SummaryModel != "" {
		cfg.SummaryModel = fc.SummaryModel
	}
	if fc.GeminiModel != "" {
		cfg.GeminiModel = fc.GeminiModel
	}
	if fc.Temperature != nil {
		cfg.Temperature = *fc.Temperature
	}
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("OPENAI_TIMEOUT"); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid OPENAI_TIMEOUT %q: expected seconds", v)
		}
		cfg.Timeout = time.Duration(secs * float64(time.Second))
	}
	if v := os.Getenv("OPENAI_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid OPENAI_MAX_RETRIES %q", v)
		}
		cfg.MaxRetries = n
	}
	if v := os.Getenv("TRANSCRIBE_MODEL"); v != "" {
		cfg.TranscribeModel = v
	}
	if v := os.Getenv("TRANSCRIBE_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("TRANSCRIBE_FORMAT"); v != "" {
		cfg.ResponseFormat = v
	}
	if v := os.Getenv("SUMMARY_PROVIDER"); v != "" {
		cfg.SummaryProvider = v
	}
	if v := os.Getenv("SUMMARY_MODEL"); v != "" {
		cfg.SummaryModel = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("SUMMARY_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid SUMMARY_TEMPERATURE %q", v)
		}
		cfg.Temperature = t
	}
	return nil
}

// RequireOpenAI fails when no OpenAI key is configured. Called before any
// transcription or OpenAI summarization request is attempted.
func (c *Config) RequireOpenAI() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set: export it or add openai_api_key to the config file: %w", ErrMissingCredential)
	}
	return nil
}

// RequireSummaryCredential fails when the configured summary provider has
// no credential.
func (c *Config) RequireSummaryCredential() error {
	switch c.SummaryProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set: export it or add gemini_api_key to the config file: %w", ErrMissingCredential)
		}
		return nil
	case ProviderOpenAI:
		return c.RequireOpenAI()
	default:
		return fmt.Errorf("unknown summary provider %q: use %q or %q", c.SummaryProvider, ProviderOpenAI, ProviderGemini)
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "clareia")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "clareia")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
