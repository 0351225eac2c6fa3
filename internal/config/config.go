// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Auth     AuthConfig
	Room     RoomConfig
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL string
	// Migrate runs AutoMigrate on startup.
	Migrate bool
}

type LoggingConfig struct {
	Level  string // debug|info|warn|error
	Format string // json|console
}

type AuthConfig struct {
	// TokenHash is a bcrypt hash of the API bearer token. Empty disables auth.
	TokenHash string
}

type RoomConfig struct {
	IdleTimeout time.Duration
}

func defaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("http_shutdown_timeout", 10*time.Second)
	v.SetDefault("database_url", "postgres://localhost:5432/draft?sslmode=disable")
	v.SetDefault("database_migrate", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("api_token_hash", "")
	v.SetDefault("room_idle_timeout", 30*time.Minute)
}

// Load reads DRAFT_* variables. envFiles are loaded first if they exist;
// variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("DRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	defaults(v)

	cfg := Config{
		HTTP: HTTPConfig{
			Addr:            v.GetString("http_addr"),
			ShutdownTimeout: v.GetDuration("http_shutdown_timeout"),
		},
		Database: DatabaseConfig{
			URL:     v.GetString("database_url"),
			Migrate: v.GetBool("database_migrate"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
		Auth: AuthConfig{TokenHash: v.GetString("api_token_hash")},
		Room: RoomConfig{IdleTimeout: v.GetDuration("room_idle_timeout")},
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q", c.Logging.Format)
	}
	if c.HTTP.Addr == "" {
		return errors.New("http address is required")
	}
	if c.Database.URL == "" {
		return errors.New("database url is required")
	}
	if c.Room.IdleTimeout < 0 {
		return fmt.Errorf("negative room idle timeout %s", c.Room.IdleTimeout)
	}
	return nil
}
