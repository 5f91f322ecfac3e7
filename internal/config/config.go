// Package config loads threadsplit configuration from defaults, .env files and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "THREADSPLIT_"

// Config is the full application configuration
type Config struct {
	Server ServerConfig `koanf:"server"`
	Cache  CacheConfig  `koanf:"cache"`
	Post   PostConfig   `koanf:"post"`
	Export ExportConfig `koanf:"export"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Host    string        `koanf:"host"    validate:"required"`
	Port    int           `koanf:"port"    validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"min=0"`
}

// CacheConfig configures the split result cache
type CacheConfig struct {
	Capacity int `koanf:"capacity" validate:"min=1"`
}

// PostConfig configures the posting pipeline
type PostConfig struct {
	Delay time.Duration `koanf:"delay" validate:"min=0"`
}

// ExportConfig configures thread export
type ExportConfig struct {
	Separator string `koanf:"separator"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "127.0.0.1",
			Port:    3456,
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Capacity: 256,
		},
		Post: PostConfig{
			Delay: 3 * time.Second,
		},
		Export: ExportConfig{
			Separator: "\n\n---\n\n",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration. Values come from the defaults, then from the optional
// dotenv file, then from THREADSPLIT_* environment variables; later sources win.
// A missing dotenv file is not an error.
func Load(dotenvPath string) (*Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// transformEnvKey maps THREADSPLIT_SERVER_PORT to server.port
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(key, "_", ".", 1), value
}

