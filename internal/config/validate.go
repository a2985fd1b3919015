package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically. All problems are reported at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Database.DSN) == "" {
		errs = append(errs, errors.New("database.dsn is required"))
	}
	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port))
	}
	if err := c.Log.validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	if err := c.SRS.validate(); err != nil {
		errs = append(errs, fmt.Errorf("srs: %w", err))
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must be >= 0 (got %v)", c.RateLimit.RequestsPerSecond))
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("rate_limit.burst must be >= 1 when limiting is enabled (got %d)", c.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}

func (s SRSConfig) validate() error {
	if s.MinEase <= 0 {
		return fmt.Errorf("min_ease must be > 0 (got %v)", s.MinEase)
	}
	if s.InitialEase < s.MinEase {
		return fmt.Errorf("initial_ease (%v) must be >= min_ease (%v)", s.InitialEase, s.MinEase)
	}
	if s.FailEasePenalty < 0 {
		return fmt.Errorf("fail_ease_penalty must be >= 0 (got %v)", s.FailEasePenalty)
	}
	if s.FirstInterval < 1 || s.SecondInterval < 1 || s.FailInterval < 1 {
		return fmt.Errorf("first_interval, second_interval and fail_interval must be >= 1")
	}
	if s.MaxIntervalDays < s.SecondInterval {
		return fmt.Errorf("max_interval_days (%d) must be >= second_interval (%d)", s.MaxIntervalDays, s.SecondInterval)
	}
	if s.DueSoonWindow < 0 {
		return fmt.Errorf("due_soon_window must be >= 0 (got %v)", s.DueSoonWindow)
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return fmt.Errorf("timezone %q: %w", s.Timezone, err)
		}
	}
	return nil
}
