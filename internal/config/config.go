package config

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/neuronote-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	SRS       SRSConfig       `yaml:"srs"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0" env-description:"HTTP listen host"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"    env-description:"HTTP listen port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true" env-description:"PostgreSQL connection string"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false" env-description:"Apply migrations on server start"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" env-description:"debug, info, warn or error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" env-description:"json or text"`
}

// SRSConfig holds SM-2 coefficients and due-set settings.
type SRSConfig struct {
	InitialEase     float64       `yaml:"initial_ease"      env:"SRS_INITIAL_EASE"      env-default:"2.5"`
	MinEase         float64       `yaml:"min_ease"          env:"SRS_MIN_EASE"          env-default:"1.3"`
	FailEasePenalty float64       `yaml:"fail_ease_penalty" env:"SRS_FAIL_EASE_PENALTY" env-default:"0.2"`
	FirstInterval   int           `yaml:"first_interval"    env:"SRS_FIRST_INTERVAL"    env-default:"1"`
	SecondInterval  int           `yaml:"second_interval"   env:"SRS_SECOND_INTERVAL"   env-default:"6"`
	FailInterval    int           `yaml:"fail_interval"     env:"SRS_FAIL_INTERVAL"     env-default:"1"`
	MaxIntervalDays int           `yaml:"max_interval_days" env:"SRS_MAX_INTERVAL_DAYS" env-default:"36500"`
	DueSoonWindow   time.Duration `yaml:"due_soon_window"   env:"SRS_DUE_SOON_WINDOW"   env-default:"1h"`
	Timezone        string        `yaml:"timezone"          env:"SRS_TIMEZONE"          env-default:"UTC" env-description:"IANA zone that defines \"today\""`
}

// ToDomain converts to the pure domain type consumed by the study service.
func (s SRSConfig) ToDomain() domain.SRSConfig {
	return domain.SRSConfig{
		InitialEase:     s.InitialEase,
		MinEase:         s.MinEase,
		FailEasePenalty: s.FailEasePenalty,
		FirstInterval:   s.FirstInterval,
		SecondInterval:  s.SecondInterval,
		FailInterval:    s.FailInterval,
		MaxIntervalDays: s.MaxIntervalDays,
		DueSoonWindow:   s.DueSoonWindow,
		Timezone:        s.Timezone,
	}
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// RateLimitConfig holds per-client request limits. Zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"RATE_LIMIT_RPS"     env-default:"20"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"   env-default:"40"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// Enabled reports whether rate limiting is on.
func (r RateLimitConfig) Enabled() bool {
	return r.RequestsPerSecond > 0
}
