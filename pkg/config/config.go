package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportModeStdio     = "stdio"
	TransportModeTCP       = "tcp"
	TransportModeWebSocket = "websocket"
)

// Recording drivers.
const (
	RecordingDriverSQLite   = "sqlite"
	RecordingDriverPostgres = "postgres"
)

// Config is the bot runner configuration.
type Config struct {
	LogLevel  string          `yaml:"logLevel"`
	Transport TransportConfig `yaml:"transport"`
	Recording RecordingConfig `yaml:"recording"`
}

// TransportConfig selects how the client reaches the engine.
type TransportConfig struct {
	Mode string `yaml:"mode"`
	// Addr is the server address for the tcp and websocket modes.
	Addr string `yaml:"addr"`
}

// RecordingConfig controls the match journal.
type RecordingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Driver  string `yaml:"driver"`
	// DSN is the sqlite file path or the postgres connection string.
	DSN string `yaml:"dsn"`
}

// Default returns the configuration used when no file is given: stdio
// transport, info logging, recording disabled.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Transport: TransportConfig{
			Mode: TransportModeStdio,
		},
		Recording: RecordingConfig{
			Driver: RecordingDriverSQLite,
		},
	}
}

// Load reads a YAML configuration file. Values not present in the file keep
// their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Transport.Mode {
	case TransportModeStdio:
	case TransportModeTCP, TransportModeWebSocket:
		if c.Transport.Addr == "" {
			return fmt.Errorf("transport mode %s requires an address", c.Transport.Mode)
		}
	default:
		return fmt.Errorf("unknown transport mode: %s", c.Transport.Mode)
	}

	if c.Recording.Enabled {
		switch c.Recording.Driver {
		case RecordingDriverSQLite, RecordingDriverPostgres:
			if c.Recording.DSN == "" {
				return fmt.Errorf("recording driver %s requires a dsn", c.Recording.Driver)
			}
		default:
			return fmt.Errorf("unknown recording driver: %s", c.Recording.Driver)
		}
	}

	return nil
}
