package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

const (
	defaultHost       = "0.0.0.0"
	defaultPort       = 3000
	defaultMaxRetries = 3
)

type Config struct {
	Database pg.Options
	App      struct {
		Host       string
		Port       int
		LogQueries bool
	}
	Sentry struct {
		DSN         string
		Environment string
	}
}

// Load decodes the TOML file at path. DATABASE_URL, when set, replaces the [Database] section.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.Getenv("DATABASE_URL")); err != nil {
		return cfg, err
	}

	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) applyEnv(databaseURL string) error {
	if databaseURL == "" {
		return nil
	}

	opt, err := pg.ParseURL(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}

func (c *Config) setDefaults() {
	if c.App.Host == "" {
		c.App.Host = defaultHost
	}
	if c.App.Port == 0 {
		c.App.Port = defaultPort
	}
	if c.Database.MaxRetries == 0 {
		c.Database.MaxRetries = defaultMaxRetries
	}
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}
