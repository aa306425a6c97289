package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AssetRoot  string `yaml:"asset_root"`
	ListenAddr string `yaml:"listen_addr"`
	MaxWorkers int    `yaml:"max_workers"`

	// Default view
	DefaultSort  string `yaml:"default_sort"`
	DefaultOrder string `yaml:"default_order"`

	// Performance
	CacheTTLSeconds int  `yaml:"cache_ttl_seconds"`
	Watch           bool `yaml:"watch"`
	WatchDebounceMS int  `yaml:"watch_debounce_ms"`

	// Rate limiting of /api/ (requests per second per client IP, 0 disables)
	RateLimit  float64 `yaml:"rate_limit"`
	RateBurst  int     `yaml:"rate_burst"`
	TrustProxy bool    `yaml:"trust_proxy"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`

	// Client
	RemoteURL             string `yaml:"remote_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		AssetRoot:             "",
		ListenAddr:            ":3000",
		MaxWorkers:            5,
		DefaultSort:           "name",
		DefaultOrder:          "asc",
		CacheTTLSeconds:       0,
		Watch:                 false,
		WatchDebounceMS:       300,
		RateLimit:             20,
		RateBurst:             40,
		LogLevel:              "info",
		LogFormat:             "text",
		ColorTheme:            "auto",
		RemoteURL:             "http://localhost:3000",
		RequestTimeoutSeconds: 10,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":3000"
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}
	if !isValidSort(cfg.DefaultSort) {
		cfg.DefaultSort = "name"
	}
	if cfg.DefaultOrder != "asc" && cfg.DefaultOrder != "desc" {
		cfg.DefaultOrder = "asc"
	}
	if cfg.CacheTTLSeconds < 0 {
		cfg.CacheTTLSeconds = 0
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 300
	}
	// Zero is meaningful for both: no limiter, or a burst derived from the rate
	if cfg.RateLimit < 0 {
		cfg.RateLimit = 20
	}
	if cfg.RateBurst < 0 {
		cfg.RateBurst = 40
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat != "json" {
		cfg.LogFormat = "text"
	}
	if cfg.RemoteURL == "" {
		cfg.RemoteURL = "http://localhost:3000"
	}
	if cfg.RequestTimeoutSeconds <= 0 {
		cfg.RequestTimeoutSeconds = 10
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CacheTTL returns the catalog cache lifetime; zero disables caching
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// WatchDebounce returns the watcher's quiet period
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// RequestTimeout returns the client's per-request timeout
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// isValidSort checks if the default sort key is valid
func isValidSort(sort string) bool {
	validSorts := []string{"name", "size", "date"}
	for _, valid := range validSorts {
		if sort == valid {
			return true
		}
	}
	return false
}
