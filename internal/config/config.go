package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Log         LogConfig         `yaml:"log"`
	Attribution AttributionConfig `yaml:"attribution"`
	Redis       RedisConfig       `yaml:"redis"`
	NATS        NATSConfig        `yaml:"nats"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// AttributionConfig holds matching engine and batch runner settings.
type AttributionConfig struct {
	DefaultWindowDays       int           `yaml:"default_window_days"      env:"ATTRIBUTION_DEFAULT_WINDOW_DAYS"      env-default:"31"`
	ReviewExpiryDays        int           `yaml:"review_expiry_days"       env:"ATTRIBUTION_REVIEW_EXPIRY_DAYS"       env-default:"7"`
	BatchSize               int           `yaml:"batch_size"               env:"ATTRIBUTION_BATCH_SIZE"               env-default:"200"`
	Concurrency             int           `yaml:"concurrency"              env:"ATTRIBUTION_CONCURRENCY"              env-default:"8"`
	MaxAttempts             int           `yaml:"max_attempts"             env:"ATTRIBUTION_MAX_ATTEMPTS"             env-default:"5"`
	PollInterval            time.Duration `yaml:"poll_interval"            env:"ATTRIBUTION_POLL_INTERVAL"            env-default:"1m"`
	LockTTL                 time.Duration `yaml:"lock_ttl"                 env:"ATTRIBUTION_LOCK_TTL"                 env-default:"30s"`
	LockWait                time.Duration `yaml:"lock_wait"                env:"ATTRIBUTION_LOCK_WAIT"                env-default:"10s"`
	ExpiryInterval          time.Duration `yaml:"expiry_interval"          env:"ATTRIBUTION_EXPIRY_INTERVAL"          env-default:"1h"`
	StaleAfter              time.Duration `yaml:"stale_after"              env:"ATTRIBUTION_STALE_AFTER"              env-default:"15m"`
	ExtraPersonalDomainsRaw string        `yaml:"extra_personal_domains"   env:"ATTRIBUTION_EXTRA_PERSONAL_DOMAINS"`

	// ExtraPersonalDomains is parsed from ExtraPersonalDomainsRaw during validation.
	ExtraPersonalDomains []string `yaml:"-" env:"-"`
}

// RedisConfig holds the connection used for per-domain locks.
// When disabled, locks are held in-process.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	URL     string `yaml:"url"     env:"REDIS_URL"     env-default:"redis://localhost:6379/0"`
}

// NATSConfig holds the upstream event stream subscription.
type NATSConfig struct {
	Enabled bool   `yaml:"enabled" env:"NATS_ENABLED" env-default:"false"`
	URL     string `yaml:"url"     env:"NATS_URL"     env-default:"nats://localhost:4222"`
	Subject string `yaml:"subject" env:"NATS_SUBJECT" env-default:"attribution.events"`
	Queue   string `yaml:"queue"   env:"NATS_QUEUE"   env-default:"attribution-intake"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// ParseDomainList splits a comma-separated list of domains, trimming and
// lower-casing each item. Empty items are skipped.
func ParseDomainList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
