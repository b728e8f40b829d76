// Package config provides configuration loading and validation for the
// resume builder. Values come from an optional JSON file overlaid with
// environment variables; either source is sufficient on its own.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds every runtime knob of the service and CLI.
// All fields are optional; missing values use defaults.
type Config struct {
	// Server
	Port       int    `json:"port,omitempty"`        // HTTP listen port
	CORSOrigin string `json:"cors_origin,omitempty"` // Allowed CORS origin ("*" for any)

	// Rate limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty"` // Requests per client IP per minute (0 disables)

	// Remote LaTeX compilation
	CompilerURL            string `json:"compiler_url,omitempty"`             // LaTeX compile service endpoint
	CompilerTimeoutSeconds int    `json:"compiler_timeout_seconds,omitempty"` // Per-compile deadline

	// Local fallback rendering
	ChromePath             string `json:"chrome_path,omitempty"`              // Chrome/Chromium binary (empty = auto-detect)
	FallbackTimeoutSeconds int    `json:"fallback_timeout_seconds,omitempty"` // Per-render deadline

	// AI optimization
	GeminiAPIKey    string `json:"api_key,omitempty"`           // Gemini API key (empty disables optimization)
	GeminiModel     string `json:"model,omitempty"`             // Gemini model name
	CacheTTLSeconds int    `json:"cache_ttl_seconds,omitempty"` // Model response cache TTL
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:                   8080,
		CORSOrigin:             "*",
		RateLimitPerMinute:     60,
		CompilerURL:            "https://latex.ytotech.com/build",
		CompilerTimeoutSeconds: 30,
		FallbackTimeoutSeconds: 60,
		GeminiModel:            "gemini-2.5-flash",
		CacheTTLSeconds:        3600,
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// JSON file at path (if non-empty), overlaid with environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.merge(*fileCfg)
	}

	cfg = cfg.merge(fromEnv())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile reads configuration from a JSON file.
func loadFile(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// fromEnv reads configuration overrides from environment variables.
func fromEnv() Config {
	return Config{
		Port:                   envInt("PORT"),
		CORSOrigin:             os.Getenv("CORS_ORIGIN"),
		RateLimitPerMinute:     envInt("RATE_LIMIT_PER_MINUTE"),
		CompilerURL:            os.Getenv("LATEX_COMPILER_URL"),
		CompilerTimeoutSeconds: envInt("COMPILER_TIMEOUT_SECONDS"),
		ChromePath:             os.Getenv("CHROME_PATH"),
		FallbackTimeoutSeconds: envInt("FALLBACK_TIMEOUT_SECONDS"),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            os.Getenv("GEMINI_MODEL"),
		CacheTTLSeconds:        envInt("CACHE_TTL_SECONDS"),
	}
}

func envInt(name string) int {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// merge returns c with zero-valued fields filled from overlay's
// non-zero values. Overlay wins where it is set.
func (c Config) merge(overlay Config) Config {
	result := c

	if overlay.Port != 0 {
		result.Port = overlay.Port
	}
	if overlay.CORSOrigin != "" {
		result.CORSOrigin = overlay.CORSOrigin
	}
	if overlay.RateLimitPerMinute != 0 {
		result.RateLimitPerMinute = overlay.RateLimitPerMinute
	}
	if overlay.CompilerURL != "" {
		result.CompilerURL = overlay.CompilerURL
	}
	if overlay.CompilerTimeoutSeconds != 0 {
		result.CompilerTimeoutSeconds = overlay.CompilerTimeoutSeconds
	}
	if overlay.ChromePath != "" {
		result.ChromePath = overlay.ChromePath
	}
	if overlay.FallbackTimeoutSeconds != 0 {
		result.FallbackTimeoutSeconds = overlay.FallbackTimeoutSeconds
	}
	if overlay.GeminiAPIKey != "" {
		result.GeminiAPIKey = overlay.GeminiAPIKey
	}
	if overlay.GeminiModel != "" {
		result.GeminiModel = overlay.GeminiModel
	}
	if overlay.CacheTTLSeconds != 0 {
		result.CacheTTLSeconds = overlay.CacheTTLSeconds
	}

	return result
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	if c.CompilerURL == "" {
		return fmt.Errorf("config error: 'compiler_url' must not be empty")
	}
	if c.CompilerTimeoutSeconds <= 0 {
		return fmt.Errorf("config error: 'compiler_timeout_seconds' must be positive")
	}
	if c.FallbackTimeoutSeconds <= 0 {
		return fmt.Errorf("config error: 'fallback_timeout_seconds' must be positive")
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("config error: 'cache_ttl_seconds' must be non-negative")
	}
	return nil
}

// CompilerTimeout returns the compile deadline as a duration.
func (c *Config) CompilerTimeout() time.Duration {
	return time.Duration(c.CompilerTimeoutSeconds) * time.Second
}

// FallbackTimeout returns the fallback render deadline as a duration.
func (c *Config) FallbackTimeout() time.Duration {
	return time.Duration(c.FallbackTimeoutSeconds) * time.Second
}

// CacheTTL returns the model response cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
