// Package common provides shared utilities for Pulse
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Pulse
type Config struct {
	Environment string         `toml:"environment"`
	Server      ServerConfig   `toml:"server"`
	Provider    ProviderConfig `toml:"provider"`
	Cache       CacheConfig    `toml:"cache"`
	Analysis    AnalysisConfig `toml:"analysis"`
	Logging     LoggingConfig  `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ProviderConfig holds market-data provider configuration
type ProviderConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
	UserAgent string `toml:"user_agent"`
}

// GetTimeout parses and returns the timeout duration
func (c *ProviderConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// CacheConfig holds snapshot cache configuration.
// Backend is "memory" (default) or "badger" for a file-backed store.
type CacheConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	TTL     string `toml:"ttl"`
}

// GetTTL parses and returns the snapshot TTL duration
func (c *CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return FreshnessSnapshot
	}
	return d
}

// AnalysisConfig holds scoring defaults applied when a request omits them
type AnalysisConfig struct {
	DefaultProfile string `toml:"default_profile"` // "balanced", "value" or "speculative"
	Aggressive     bool   `toml:"aggressive"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level    string   `toml:"level"`
	Outputs  []string `toml:"outputs"`
	FilePath string   `toml:"file_path"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Provider: ProviderConfig{
			BaseURL:   "https://query1.finance.yahoo.com",
			RateLimit: 5,
			Timeout:   "30s",
			UserAgent: "pulse/1.0",
		},
		Cache: CacheConfig{
			Backend: "memory",
			Path:    "data/snapshots",
			TTL:     "5m",
		},
		Analysis: AnalysisConfig{
			DefaultProfile: "balanced",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Outputs:  []string{"console"},
			FilePath: "./logs/pulse.log",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PULSE_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("PULSE_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("PULSE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("PULSE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if baseURL := os.Getenv("PULSE_PROVIDER_BASE_URL"); baseURL != "" {
		config.Provider.BaseURL = baseURL
	}

	if path := os.Getenv("PULSE_CACHE_PATH"); path != "" {
		config.Cache.Path = path
	}

	if ttl := os.Getenv("PULSE_CACHE_TTL"); ttl != "" {
		config.Cache.TTL = ttl
	}

	if profile := os.Getenv("PULSE_DEFAULT_PROFILE"); profile != "" {
		config.Analysis.DefaultProfile = strings.ToLower(profile)
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
