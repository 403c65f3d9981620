package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every setting the API reads at startup.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"` // gin mode: debug, release, test
	CORSOrigins []string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite, postgres, mysql
	DSN    string `yaml:"dsn"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	TokenTTL  string `yaml:"token_ttl"`
	// EnforceRoles puts user-management routes behind an ADMIN token.
	EnforceRoles bool `yaml:"enforce_roles"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the settings used when no file or env var overrides them.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			Mode:        "debug",
			CORSOrigins: []string{"http://localhost:3000", "*"},
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "sustainshare.db",
		},
		Auth: AuthConfig{
			JWTSecret: "sustainshare_dev_secret",
			TokenTTL:  "24h",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path (if any) on top of the defaults and then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Mode = getEnv("GIN_MODE", c.Server.Mode)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = splitList(origins)
	}
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DB_DSN", c.Database.DSN)
	c.Auth.JWTSecret = getEnv("JWT_SECRET", c.Auth.JWTSecret)
	c.Auth.TokenTTL = getEnv("TOKEN_TTL", c.Auth.TokenTTL)
	if v := os.Getenv("AUTH_ENFORCE_ROLES"); v != "" {
		c.Auth.EnforceRoles = v == "true" || v == "1"
	}
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server mode %q", c.Server.Mode)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
