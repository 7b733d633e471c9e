package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultListenAddr = ":8085"
const defaultReadHeaderTimeout = 10 * time.Second
const defaultShutdownTimeout = 15 * time.Second

type Config struct {
	ListenAddr        string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

type fileConfig struct {
	ListenAddr               string `yaml:"listen_addr"`
	ReadHeaderTimeoutSeconds int    `yaml:"read_header_timeout_seconds"`
	ShutdownTimeoutSeconds   int    `yaml:"shutdown_timeout_seconds"`
}

// Load builds the configuration from defaults, an optional YAML file
// named by CONFIG_FILE, and finally LISTEN_ADDR. Later sources win.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:        defaultListenAddr,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		ShutdownTimeout:   defaultShutdownTimeout,
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}

		var fc fileConfig
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}

		if addr := strings.TrimSpace(fc.ListenAddr); addr != "" {
			cfg.ListenAddr = addr
		}
		if fc.ReadHeaderTimeoutSeconds > 0 {
			cfg.ReadHeaderTimeout = time.Duration(fc.ReadHeaderTimeoutSeconds) * time.Second
		}
		if fc.ShutdownTimeoutSeconds > 0 {
			cfg.ShutdownTimeout = time.Duration(fc.ShutdownTimeoutSeconds) * time.Second
		}
	}

	if addr := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); addr != "" {
		cfg.ListenAddr = addr
	}

	return cfg, nil
}
