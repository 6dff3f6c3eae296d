package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/missionboard/internal/missions"
)

// Config captures missionboard's settings.
type Config struct {
	Endpoint string
	Limit    int // zero means no limit
	Theme    string
	LogFile  string
	Timeout  time.Duration
}

const (
	defaultConfigPath = "~/.config/missionboard/config.toml"
	defaultLogFile    = "~/.local/state/missionboard/missionboard.log"
	defaultTheme      = "Nightfox"
	defaultTimeout    = 10 * time.Second

	envPrefix = "MISSIONBOARD_"
)

// envOverrides are read after the file; unset variables leave the file values alone.
type envOverrides struct {
	Endpoint string         `env:"ENDPOINT"`
	Limit    *int           `env:"LIMIT"`
	Theme    string         `env:"THEME"`
	LogFile  string         `env:"LOG_FILE"`
	Timeout  *time.Duration `env:"TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: missions.DefaultEndpoint,
		Theme:    defaultTheme,
		LogFile:  mustExpand(defaultLogFile),
		Timeout:  defaultTimeout,
	}
}

// Load reads the config file (falling back to defaults when it is missing)
// and applies MISSIONBOARD_* environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := cfg.loadFile(resolved); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint string `toml:"endpoint"`
		Limit    *int   `toml:"limit"`
		Theme    string `toml:"theme"`
		LogFile  string `toml:"log_file"`
		Timeout  string `toml:"timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		c.Endpoint = v
	}
	if raw.Limit != nil {
		c.Limit = *raw.Limit
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config timeout %q: %w", v, err)
		}
		c.Timeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	var raw envOverrides
	if err := env.ParseWithOptions(&raw, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		c.Endpoint = v
	}
	if raw.Limit != nil {
		c.Limit = *raw.Limit
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	if raw.Timeout != nil {
		c.Timeout = *raw.Timeout
	}
	return nil
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// Query returns the fetch variables implied by the config.
func (c Config) Query() missions.Query {
	var q missions.Query
	if c.Limit > 0 {
		limit := c.Limit
		q.Limit = &limit
	}
	return q
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
