package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all CLI configuration.
type Config struct {
	Server  ServerConfig    `toml:"server"`
	Auth    AuthConfig      `toml:"auth"`
	HTTP    HTTPConfig      `toml:"http"`
	Logging LogConfig       `toml:"logging"`
	Limit   RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig identifies the Request Tracker instance.
type ServerConfig struct {
	URL string `envconfig:"RT_URL" toml:"url"`
}

// AuthConfig holds credentials. Token wins over username/password.
type AuthConfig struct {
	Token    string `envconfig:"RT_TOKEN" toml:"token"`
	Username string `envconfig:"RT_USER" toml:"username"`
	Password string `envconfig:"RT_PASS" toml:"password"`
}

// HTTPConfig holds session tuning.
type HTTPConfig struct {
	Timeout       time.Duration `envconfig:"RT_TIMEOUT" toml:"timeout"`
	RetryMax      int           `envconfig:"RT_RETRY_MAX" toml:"retry_max"`
	SkipTLSVerify bool          `envconfig:"RT_SKIP_TLS_VERIFY" toml:"skip_tls_verify"`
	ProxyURL      string        `envconfig:"RT_PROXY" toml:"proxy_url"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"RT_LOG_LEVEL" toml:"level"`
	Development bool   `envconfig:"RT_LOG_DEV" toml:"development"`
}

// RateLimitConfig caps outgoing request rate.
type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RT_RATE_RPS" toml:"requests_per_second"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:  30 * time.Second,
			RetryMax: 3,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	if p := os.Getenv("RT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rt", "config.toml")
}

// Load builds the configuration in three layers: defaults, then the TOML
// file at path (skipped when absent), then environment overrides. An empty
// path means DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads configuration or falls back to defaults.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks that the config can produce a working client.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return errors.New("server URL is required (RT_URL or [server] url)")
	}
	if c.Auth.Token == "" && (c.Auth.Username == "" || c.Auth.Password == "") {
		return errors.New("either a token or username and password are required")
	}
	return nil
}

// applyFile overlays the TOML file at path onto cfg.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
