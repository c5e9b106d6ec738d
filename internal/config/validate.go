package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration and
// resolves the storage driver. Load calls it automatically.
func (c *Config) Validate() error {
	switch c.App.Env {
	case EnvProd, EnvDev, EnvTest:
	default:
		return fmt.Errorf("app.env must be one of prod, dev, test (got %q)", c.App.Env)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Storage.validate(c.App.Env); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.WritesPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval)
	}

	return nil
}

// DefaultDriver returns the storage driver used when none is configured.
func DefaultDriver(env string) string {
	if env == EnvTest {
		return DriverMemory
	}
	return DriverSQLite
}

func (s *StorageConfig) validate(env string) error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if s.Driver == "" {
		s.Driver = DefaultDriver(env)
	}

	switch s.Driver {
	case DriverSQLite:
		if strings.TrimSpace(s.SQLitePath) == "" {
			return fmt.Errorf("sqlite_path is required for the sqlite driver")
		}
		if s.MaxOpenConns <= 0 {
			return fmt.Errorf("max_open_conns must be > 0 (got %d)", s.MaxOpenConns)
		}
	case DriverJSON:
		if strings.TrimSpace(s.JSONPath) == "" {
			return fmt.Errorf("json_path is required for the json driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("driver must be one of sqlite, json, memory (got %q)", s.Driver)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch l.Format {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
