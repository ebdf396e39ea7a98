// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/writing-highlighter/internal/detection"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/ranking"
)

// Default values applied by MergeWithDefaults(Defaults())
const (
	DefaultPort        = 8080
	DefaultConcurrency = 4
	DefaultRedisTTL    = 3600
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from flags and environment.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis URL for the highlight cache
	RedisTTL    int    `json:"redis_ttl_seconds,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"` // json or console

	// Annotation
	AutoThreshold     float64  `json:"auto_threshold,omitempty"` // Minimum confidence for auto-detected evidence (0.0-1.0)
	MaxAuto           int      `json:"max_auto,omitempty"`
	MaxDictionary     int      `json:"max_dictionary,omitempty"`
	AllowedCategories []string `json:"allowed_categories,omitempty"` // Extra categories allowed to render auto-detected evidence
	AllowAll          bool     `json:"allow_all,omitempty"`
	Concurrency       int      `json:"concurrency,omitempty"`
	LexiconPath       string   `json:"lexicon_path,omitempty"` // Custom lexicon YAML replacing the built-in one

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	rank := ranking.DefaultOptions()
	return Config{
		Port:          DefaultPort,
		RedisTTL:      DefaultRedisTTL,
		LogLevel:      "info",
		LogFormat:     "json",
		AutoThreshold: rank.AutoThreshold,
		MaxAuto:       rank.MaxAuto,
		MaxDictionary: rank.MaxDictionary,
		Concurrency:   DefaultConcurrency,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// ApplyEnv overrides connection and logging settings from the environment.
// Recognised: PORT, DATABASE_URL, REDIS_URL, LOG_LEVEL, LOG_FORMAT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT: %v", err)
		}
		c.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.AutoThreshold < 0 || c.AutoThreshold > 1 {
		return fmt.Errorf("config error: 'auto_threshold' must be between 0 and 1")
	}
	if c.MaxAuto < 0 || c.MaxDictionary < 0 {
		return fmt.Errorf("config error: 'max_auto' and 'max_dictionary' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.RedisTTL < 0 {
		return fmt.Errorf("config error: 'redis_ttl_seconds' must be non-negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if f := strings.ToLower(c.LogFormat); f != "" && f != "json" && f != "console" {
		return fmt.Errorf("config error: 'log_format' must be json or console")
	}

	for _, name := range c.AllowedCategories {
		if _, ok := detection.ParseCategory(name); !ok {
			return fmt.Errorf("config error: unknown category %q", name)
		}
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RedisTTL == 0 {
		result.RedisTTL = defaults.RedisTTL
	}
	if result.MaxAuto == 0 {
		result.MaxAuto = defaults.MaxAuto
	}
	if result.MaxDictionary == 0 {
		result.MaxDictionary = defaults.MaxDictionary
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	if result.AutoThreshold == 0 {
		result.AutoThreshold = defaults.AutoThreshold
	}

	if len(result.AllowedCategories) == 0 {
		result.AllowedCategories = defaults.AllowedCategories
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Policy builds the fallback policy: the default categories plus any configured extras.
func (c *Config) Policy() detection.Policy {
	policy := detection.DefaultPolicy()
	for _, name := range c.AllowedCategories {
		if cat, ok := detection.ParseCategory(name); ok {
			policy = policy.Allow(cat)
		}
	}
	if c.AllowAll {
		policy = policy.AllowAll()
	}
	return policy
}

// RankOptions returns the heuristic thinning options.
func (c *Config) RankOptions() ranking.Options {
	return ranking.Options{
		AutoThreshold: c.AutoThreshold,
		MaxAuto:       c.MaxAuto,
		MaxDictionary: c.MaxDictionary,
	}
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.LogLevel, Format: c.LogFormat}
}
