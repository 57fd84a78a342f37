// ABOUTME: Gym configuration management with backend selection.
// ABOUTME: Handles settings, log level, and the storage backend factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/harperreed/gym/internal/kv"
)

// Backend names accepted in the config file and on the command line.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Config stores gym tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger",
	// "charm", or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts gym.db here; badger uses a badger/ subdirectory.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/gym.
	DataDir string `json:"data_dir,omitempty"`

	// LogLevel is one of debug, info, warn, error. Defaults to warn.
	LogLevel string `json:"log_level,omitempty"`

	// CharmHost overrides the Charm server for the charm backend.
	CharmHost string `json:"charm_host,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetLogLevel parses LogLevel, defaulting to warn.
func (c *Config) GetLogLevel() (log.Level, error) {
	if c.LogLevel == "" {
		return log.WarnLevel, nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// DataDir returns the default data directory under XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gym")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend creates a kv.Backend based on the configured backend.
func (c *Config) OpenBackend(logger *log.Logger) (kv.Backend, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case BackendSQLite:
		return kv.OpenSQLite(filepath.Join(dataDir, "gym.db"))
	case BackendBadger:
		return kv.OpenBadger(filepath.Join(dataDir, "badger"), logger)
	case BackendCharm:
		return kv.OpenCharm("gym", c.CharmHost)
	case BackendMemory:
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// Keys accepted by Set, in display order.
var Keys = []string{"backend", "data_dir", "log_level", "charm_host"}

// Set updates one setting by key. An empty value restores the default.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		switch value {
		case "", BackendSQLite, BackendBadger, BackendCharm, BackendMemory:
		default:
			return fmt.Errorf("unknown backend: %q", value)
		}
		c.Backend = value
	case "data_dir":
		c.DataDir = value
	case "log_level":
		if value != "" {
			if _, err := log.ParseLevel(value); err != nil {
				return fmt.Errorf("invalid log level %q: %w", value, err)
			}
		}
		c.LogLevel = value
	case "charm_host":
		c.CharmHost = value
	default:
		return fmt.Errorf("unknown config key: %q (use %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// Get returns one setting by key, with defaults applied.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backend":
		return c.GetBackend(), nil
	case "data_dir":
		return c.GetDataDir(), nil
	case "log_level":
		level, _ := c.GetLogLevel()
		return level.String(), nil
	case "charm_host":
		if c.CharmHost == "" {
			return kv.DefaultCharmHost, nil
		}
		return c.CharmHost, nil
	default:
		return "", fmt.Errorf("unknown config key: %q (use %s)", key, strings.Join(Keys, ", "))
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "gym", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
