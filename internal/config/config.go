package config

import (
	"net"
	"strconv"
	"time"
)

// Environments select storage defaults.
const (
	EnvProd = "prod"
	EnvDev  = "dev"
	EnvTest = "test"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"
	DriverMemory = "memory"
)

// Config is the root application configuration.
type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// AppConfig identifies the running environment.
type AppConfig struct {
	Name string `yaml:"name" env:"APP_NAME" env-default:"jobtracker"`
	Env  string `yaml:"env"  env:"APP_ENV"  env-default:"dev"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StorageConfig selects and configures the persistence backend. An empty
// Driver is resolved from the environment during validation.
type StorageConfig struct {
	Driver       string        `yaml:"driver"         env:"STORAGE_DRIVER"`
	SQLitePath   string        `yaml:"sqlite_path"    env:"STORAGE_SQLITE_PATH"    env-default:"data/jobtracker.db"`
	JSONPath     string        `yaml:"json_path"      env:"STORAGE_JSON_PATH"      env-default:"data/jobtracker.json"`
	MaxOpenConns int           `yaml:"max_open_conns" env:"STORAGE_MAX_OPEN_CONNS" env-default:"4"`
	BusyTimeout  time.Duration `yaml:"busy_timeout"   env:"STORAGE_BUSY_TIMEOUT"   env-default:"5s"`
	AutoMigrate  bool          `yaml:"auto_migrate"   env:"STORAGE_AUTO_MIGRATE"   env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"   env:"METRICS_ENABLED"   env-default:"true"`
	Path      string `yaml:"path"      env:"METRICS_PATH"      env-default:"/metrics"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"jobtracker"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,HX-Request,HX-Target"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig limits mutating API requests per client address.
// Zero disables the limiter.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// IsTest reports whether the test environment is selected.
func (c AppConfig) IsTest() bool { return c.Env == EnvTest }

// Addr returns host:port for the HTTP listener.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
