// Package config loads the backend configuration from the environment and
// an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrAPIURLMissing = errors.New("environment variable API_URL must be set")

// Config is the configuration of the backend.
type Config struct {
	APIURL           *url.URL      `mapstructure:"-"`
	RawAPIURL        string        `mapstructure:"api_url"`
	Port             int           `mapstructure:"port"`
	GinMode          string        `mapstructure:"gin_mode"`
	LogFormat        string        `mapstructure:"log_format"`
	CORSAllowOrigins string        `mapstructure:"cors_allow_origins"`
	EnablePprof      bool          `mapstructure:"enable_pprof"`
	RedisURL         string        `mapstructure:"redis_url"`
	Database         Database      `mapstructure:"database"`
	Budget           Budget        `mapstructure:"budget"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
}

type Database struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type Budget struct {
	RecalculationLease time.Duration `mapstructure:"recalculation_lease"`
}

// Load reads the configuration. Environment variables take precedence over
// the file set in LEDGER_CONFIG.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api_url", "")
	v.SetDefault("port", 8080)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_format", "")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("enable_pprof", false)
	v.SetDefault("redis_url", "")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/ledger.db")
	v.SetDefault("budget.recalculation_lease", "5m")
	v.SetDefault("shutdown_timeout", "10s")

	path := os.Getenv("LEDGER_CONFIG")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.RawAPIURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	u, err := url.Parse(c.RawAPIURL)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	c.APIURL = u

	return c, nil
}

// Debug reports if gin runs in debug mode.
func (c Config) Debug() bool {
	return c.GinMode == "debug"
}

// HumanLogs reports if logs are written for humans instead of as JSON.
func (c Config) HumanLogs() bool {
	if c.LogFormat != "" {
		return c.LogFormat == "human"
	}

	return c.Debug()
}

// Origins returns the allowed CORS origins.
func (c Config) Origins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}
