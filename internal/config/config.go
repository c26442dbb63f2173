package config

import (
	"time"
)

// Config holds all configuration options for the taskboard server
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path         string        `mapstructure:"path"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// AuthConfig holds token signing and credential bootstrap configuration.
// The seed credentials default to a fixed development pair (admin/123);
// this is a known weakness kept for reproducible first runs, not a
// production provisioning mechanism. Override both in any real deployment.
type AuthConfig struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	BcryptCost        int           `mapstructure:"bcrypt_cost"`
	SeedAdminUsername string        `mapstructure:"seed_admin_username"`
	SeedAdminPassword string        `mapstructure:"seed_admin_password"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:         "taskboard.db",
			QueryTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret:         "dev-secret-change-me",
			TokenTTL:          24 * time.Hour,
			BcryptCost:        10,
			SeedAdminUsername: "admin",
			SeedAdminPassword: "123",
		},
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.WriteTimeout <= 0 {
		return &ConfigError{Field: "server.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Auth.JWTSecret == "" {
		return &ConfigError{Field: "auth.jwt_secret", Message: "signing secret cannot be empty"}
	}
	if c.Auth.TokenTTL <= 0 {
		return &ConfigError{Field: "auth.token_ttl", Message: "token TTL must be positive"}
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return &ConfigError{Field: "auth.bcrypt_cost", Message: "bcrypt cost must be between 4 and 31"}
	}
	if c.Auth.SeedAdminUsername == "" {
		return &ConfigError{Field: "auth.seed_admin_username", Message: "seed admin username cannot be empty"}
	}
	if c.Auth.SeedAdminPassword == "" {
		return &ConfigError{Field: "auth.seed_admin_password", Message: "seed admin password cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
