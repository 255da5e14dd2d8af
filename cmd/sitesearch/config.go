package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/fwojciec/sitesearch"
	lochttp "github.com/fwojciec/sitesearch/http"
	"gopkg.in/yaml.v3"
)

const appName = "sitesearch"

// DefaultMaxPages is the crawl budget used when none is configured.
const DefaultMaxPages = 5

// Environment variables overriding the configuration file.
const (
	EnvDB       = "SITESEARCH_DB"
	EnvSnapshot = "SITESEARCH_SNAPSHOT"
)

// Config holds settings shared by all commands.
// Values are resolved from defaults, then the config file, then the
// environment, then command-line flags.
type Config struct {
	DB          string        `yaml:"db"`
	Snapshot    string        `yaml:"snapshot"`
	MaxPages    int           `yaml:"max_pages"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
	UserAgent   string        `yaml:"user_agent"`
}

// DefaultConfig returns the configuration used when no file exists.
// Data files live under the XDG data directory.
func DefaultConfig() *Config {
	dataDir := filepath.Join(xdg.DataHome, appName)
	return &Config{
		DB:          filepath.Join(dataDir, "sitesearch.db"),
		Snapshot:    filepath.Join(dataDir, "snapshot.json"),
		MaxPages:    DefaultMaxPages,
		Concurrency: 1,
		Timeout:     lochttp.DefaultFetchTimeout,
	}
}

// DefaultConfigPath returns the config file location under the XDG config directory.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// LoadConfig reads the YAML file at path on top of the defaults.
// A missing file is only an error when required is true.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid config file %s: %v", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides storage paths from the environment.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDB); v != "" {
		c.DB = v
	}
	if v := getenv(EnvSnapshot); v != "" {
		c.Snapshot = v
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.DB == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "database path required")
	}
	if c.Snapshot == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "snapshot path required")
	}
	if c.MaxPages < 1 {
		return sitesearch.Errorf(sitesearch.EINVALID, "max pages must be at least 1, got %d", c.MaxPages)
	}
	if c.Concurrency < 1 {
		return sitesearch.Errorf(sitesearch.EINVALID, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Timeout <= 0 {
		return sitesearch.Errorf(sitesearch.EINVALID, "timeout must be positive")
	}
	return nil
}
