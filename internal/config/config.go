// Package config loads the ailearn configuration file and applies
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/ailearn/internal/pacing"
)

// Backends for the progress blob.
const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var ErrInvalidBackend = errors.New("invalid backend")

// Config is the whole configuration file.
type Config struct {
	// Backend selects where the progress blob lives. The SQLite database
	// is opened regardless since it holds snapshots and the event log.
	Backend string `yaml:"backend"`

	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Pacing   pacing.Delays  `yaml:"pacing"`

	// Rubrics is an optional YAML file of extra evaluation rubrics.
	Rubrics string `yaml:"rubrics"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`

	// SnapshotsKept is how many progress snapshots survive pruning.
	SnapshotsKept int `yaml:"snapshots_kept"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
	Key string `yaml:"key"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`

	// File receives the TUI's log output. Empty means ailearn.log next to
	// the database.
	File string `yaml:"file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Backend:  BackendSQLite,
		Database: DatabaseConfig{SnapshotsKept: 10},
		Redis:    RedisConfig{Addr: "localhost:6379", Key: "ailearn-storage"},
		Postgres: PostgresConfig{Key: "ailearn-storage"},
		HTTP:     HTTPConfig{Addr: "127.0.0.1:8080"},
		Logging:  LoggingConfig{Level: "info"},
		Pacing:   pacing.DefaultDelays(),
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. AILEARN_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/ailearn/config.yaml
// 3. ~/.config/ailearn/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("AILEARN_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ailearn", "config.yaml"), nil
}

// Load reads path, falling back to defaults when it does not exist, and
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks values that cannot be caught by decoding.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendRedis, BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}
	if c.Backend == BackendPostgres && c.Postgres.DSN == "" {
		return errors.New("postgres backend needs postgres.dsn or AILEARN_POSTGRES_DSN")
	}
	if c.Pacing.Generation < 0 || c.Pacing.Feedback < 0 || c.Pacing.Evaluation < 0 {
		return errors.New("pacing delays must not be negative")
	}
	if c.Database.SnapshotsKept < 1 {
		return fmt.Errorf("database.snapshots_kept must be at least 1, got %d", c.Database.SnapshotsKept)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if p := os.Getenv("AILEARN_DB"); p != "" {
		c.Database.Path = p
	}
	if b := os.Getenv("AILEARN_BACKEND"); b != "" {
		c.Backend = b
	}
	if a := os.Getenv("AILEARN_REDIS_ADDR"); a != "" {
		c.Redis.Addr = a
	}
	if dsn := os.Getenv("AILEARN_POSTGRES_DSN"); dsn != "" {
		c.Postgres.DSN = dsn
	}
	if a := os.Getenv("AILEARN_HTTP_ADDR"); a != "" {
		c.HTTP.Addr = a
	}
	if l := os.Getenv("AILEARN_LOG_LEVEL"); l != "" {
		c.Logging.Level = l
	}
	if v := os.Getenv("AILEARN_NO_PACING"); v != "" {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AILEARN_NO_PACING: %w", err)
		}
		if off {
			c.Pacing = pacing.Delays{}
		}
	}
	return nil
}
