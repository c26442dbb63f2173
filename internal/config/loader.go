package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with an optional YAML config file (path may be empty)
// 3. Override with TASKBOARD_-prefixed environment variables
//    (e.g. TASKBOARD_AUTH_JWT_SECRET, TASKBOARD_SERVER_ADDR)
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := NewConfig()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("database.query_timeout", defaults.Database.QueryTimeout)
	v.SetDefault("auth.jwt_secret", defaults.Auth.JWTSecret)
	v.SetDefault("auth.token_ttl", defaults.Auth.TokenTTL)
	v.SetDefault("auth.bcrypt_cost", defaults.Auth.BcryptCost)
	v.SetDefault("auth.seed_admin_username", defaults.Auth.SeedAdminUsername)
	v.SetDefault("auth.seed_admin_password", defaults.Auth.SeedAdminPassword)

	v.SetEnvPrefix("TASKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			// A missing file falls back to defaults plus env; anything
			// else is a real configuration problem.
			if _, ok := err.(*os.PathError); !ok {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return nil, fmt.Errorf("reading config %s: %w", path, err)
				}
			}
		}
	}

	cfg := NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
