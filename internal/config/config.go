// Package config reads the process configuration from the environment, an
// optional .env file and an optional YAML file named by CATERING_CONFIG_FILE.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"catering_backend/internal/database"
	"catering_backend/pkg/utils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Data modes.
const (
	ModeLocal     = "local"
	ModeFederated = "federated"
	ModeNone      = "none"
)

const defaultRemoteTimeout = 10 * time.Second

type Config struct {
	DataMode      string        `yaml:"data_mode"`
	LocalDriver   string        `yaml:"local_db_driver"`
	LocalDSN      string        `yaml:"local_db_dsn"`
	LocalSchema   string        `yaml:"local_db_schema_file"` // optional SQL script run after migration
	RemoteBaseURL string        `yaml:"remote_base_url"`
	RemoteAPIKey  string        `yaml:"remote_api_key"`
	RemoteTimeout time.Duration `yaml:"remote_timeout"`
	Port          string        `yaml:"port"`
	CORSOrigins   []string      `yaml:"cors_allowed_origins"`
	LogLevel      string        `yaml:"log_level"`
	LogFormat     string        `yaml:"log_format"`
}

// Load builds the configuration. Values in the YAML file win over the
// environment; a missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := FromEnv()
	if path := os.Getenv("CATERING_CONFIG_FILE"); path != "" {
		if err := cfg.overlay(path); err != nil {
			return nil, err
		}
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads every key from the environment, with defaults.
func FromEnv() *Config {
	return &Config{
		DataMode:      utils.Getenv("DATA_MODE", ModeLocal),
		LocalDriver:   utils.Getenv("LOCAL_DB_DRIVER", string(database.SQLite)),
		LocalDSN:      utils.Getenv("LOCAL_DB_DSN", "data/catering.db"),
		LocalSchema:   utils.Getenv("LOCAL_DB_SCHEMA_FILE", ""),
		RemoteBaseURL: utils.Getenv("REMOTE_BASE_URL", ""),
		RemoteAPIKey:  utils.Getenv("REMOTE_API_KEY", ""),
		RemoteTimeout: utils.GetenvDuration("REMOTE_TIMEOUT", defaultRemoteTimeout),
		Port:          utils.Getenv("PORT", "8080"),
		CORSOrigins:   utils.GetenvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		LogLevel:      utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:     utils.Getenv("LOG_FORMAT", "console"),
	}
}

func (c *Config) overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.DataMode, file.DataMode)
	set(&c.LocalDriver, file.LocalDriver)
	set(&c.LocalDSN, file.LocalDSN)
	set(&c.LocalSchema, file.LocalSchema)
	set(&c.RemoteBaseURL, file.RemoteBaseURL)
	set(&c.RemoteAPIKey, file.RemoteAPIKey)
	set(&c.Port, file.Port)
	set(&c.LogLevel, file.LogLevel)
	set(&c.LogFormat, file.LogFormat)
	if file.RemoteTimeout > 0 {
		c.RemoteTimeout = file.RemoteTimeout
	}
	if len(file.CORSOrigins) > 0 {
		c.CORSOrigins = file.CORSOrigins
	}
	return nil
}

func (c *Config) normalize() {
	c.DataMode = strings.ToLower(strings.TrimSpace(c.DataMode))
	c.RemoteBaseURL = strings.TrimRight(strings.TrimSpace(c.RemoteBaseURL), "/")
	if c.RemoteTimeout <= 0 {
		c.RemoteTimeout = defaultRemoteTimeout
	}
}

// Validate checks the settings the selected mode depends on. An unknown mode
// is not an error here: the factory answers it with the null store.
func (c *Config) Validate() error {
	if c.DataMode == ModeLocal || c.DataMode == ModeFederated {
		if _, err := database.ParseDialect(c.LocalDriver); err != nil {
			return err
		}
	}
	if c.DataMode == ModeFederated && c.RemoteBaseURL == "" {
		return fmt.Errorf("REMOTE_BASE_URL is required in %s mode", ModeFederated)
	}
	return nil
}

// Dialect is the parsed LocalDriver.
func (c *Config) Dialect() (database.Dialect, error) {
	return database.ParseDialect(c.LocalDriver)
}
