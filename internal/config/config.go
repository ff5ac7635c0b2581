// Package config loads and validates the job server configuration from
// defaults, an optional config file, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the full job server configuration.
type Config struct {
	// Host and Port for the gRPC listener.
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`

	// WorkDir is the working directory every spawned job process runs under.
	WorkDir string `mapstructure:"workdir"`

	// MetricsAddr is the listen address for the Prometheus/health HTTP
	// endpoints. Empty disables the metrics server.
	MetricsAddr string `mapstructure:"metrics_addr"`

	ServerCertPath string `mapstructure:"server_cert"`
	ServerKeyPath  string `mapstructure:"server_key"`
	CACertPath     string `mapstructure:"ca_cert"`

	Debug bool `mapstructure:"debug"`
}

// Load builds a Config from defaults, the config file at path (optional;
// empty means no file), and RUNLET_-prefixed environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "localhost")
	v.SetDefault("port", 8443)
	v.SetDefault("workdir", "work")
	v.SetDefault("metrics_addr", "")
	v.SetDefault("server_cert", "certs/server.crt")
	v.SetDefault("server_key", "certs/server.key")
	v.SetDefault("ca_cert", "certs/ca.crt")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("RUNLET")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable: the port is valid, the
// certificate files are present, and the working directory exists.
func (c *Config) Validate() error {
	if c.Port == 0 {
		return errors.New("port must be in valid range")
	}

	if c.WorkDir == "" {
		return errors.New("workdir cannot be empty")
	}

	info, err := os.Stat(c.WorkDir)
	if err != nil {
		return fmt.Errorf("failed to stat workdir: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("workdir %q is not a directory", c.WorkDir)
	}

	for name, path := range map[string]string{
		"server_cert": c.ServerCertPath,
		"server_key":  c.ServerKeyPath,
		"ca_cert":     c.CACertPath,
	} {
		if path == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}

		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("failed to stat %s: %w", name, err)
		}
	}

	return nil
}
