// Package config holds the process-wide configuration, constructed once at
// startup and passed into the components that need it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HIREORBIT_"

// Config is the full application configuration. Values are layered:
// defaults, then an optional YAML file, then HIREORBIT_* environment
// variables (e.g. HIREORBIT_AUTH_SECRET, HIREORBIT_SERVER_PORT).
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
	// Origin is the single frontend origin allowed to call the API with
	// credentials. Methods and headers stay permissive.
	Origin string `koanf:"origin"`
}

type DatabaseConfig struct {
	// Path to the SQLite database file; ":memory:" for tests.
	Path string `koanf:"path"`
}

type AuthConfig struct {
	// Secret signs and verifies bearer tokens. Required, at least 16 chars.
	Secret string `koanf:"secret"`
	// TokenTTL is the bearer token lifetime.
	TokenTTL time.Duration `koanf:"tokenttl"`
	// BcryptCost is the password hashing work factor; 0 selects the default.
	BcryptCost int `koanf:"bcryptcost"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.Origin = "http://localhost:3000"
	cfg.Database.Path = "data/hireorbit.db"
	cfg.Auth.TokenTTL = 30 * time.Minute
	return cfg
}

// Load builds the configuration. filePath may be empty or point to a YAML
// file; a missing file is only an error when it was explicitly requested.
func Load(filePath string) (*Config, error) {
	cfg := defaults()
	k := koanf.New(".")

	if filePath != "" {
		if _, err := os.Stat(filePath); err != nil {
			return nil, fmt.Errorf("config: stat %s: %w", filePath, err)
		}
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", filePath, err)
		}
	}

	// HIREORBIT_SERVER_PORT -> server.port, HIREORBIT_AUTH_SECRET -> auth.secret
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.Secret == "" {
		return errors.New("config: auth secret is required (set HIREORBIT_AUTH_SECRET)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: token TTL must be positive")
	}
	return nil
}
