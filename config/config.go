// Package config loads dynsql settings: the binding strategy, logging and
// the executor's statement cache.
//
//	strategy: spring
//	log:
//	  level: debug
//	  format: text
//	executor:
//	  statement_cache_size: 64
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvStrategy  = "DYNSQL_STRATEGY"
	EnvLogLevel  = "DYNSQL_LOG_LEVEL"
	EnvLogFormat = "DYNSQL_LOG_FORMAT"
	EnvCacheSize = "DYNSQL_STATEMENT_CACHE_SIZE"
)

// Config holds dynsql settings.
type Config struct {
	Strategy string         `json:"strategy" yaml:"strategy"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Executor ExecutorConfig `json:"executor" yaml:"executor"`
}

// LogConfig configures the slog logger handed to the executor.
type LogConfig struct {
	Level     string `json:"level" yaml:"level"`   // debug, info, warn or error
	Format    string `json:"format" yaml:"format"` // text or json
	AddSource bool   `json:"add_source" yaml:"add_source"`
}

// ExecutorConfig configures the statement executor.
type ExecutorConfig struct {
	StatementCacheSize int `json:"statement_cache_size" yaml:"statement_cache_size"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Strategy: "positional",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Executor: ExecutorConfig{
			StatementCacheSize: 64,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// ApplyEnv overrides settings from DYNSQL_* environment variables and
// validates the result.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStrategy); ok && v != "" {
		c.Strategy = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvCacheSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheSize, err)
		}
		c.Executor.StatementCacheSize = n
	}
	return c.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Strategy == "" {
		return fmt.Errorf("strategy is required")
	}
	if !Registered(c.Strategy) {
		return fmt.Errorf("unknown strategy %q (registered: %s)", c.Strategy, strings.Join(Names(), ", "))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}
	if c.Executor.StatementCacheSize < 1 {
		return fmt.Errorf("executor.statement_cache_size must be positive, got %d", c.Executor.StatementCacheSize)
	}
	return nil
}

// Logger creates a logger writing to w.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: c.Log.AddSource,
	}

	var handler slog.Handler
	switch c.Log.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
}
