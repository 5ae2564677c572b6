package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Attribution.validate(); err != nil {
		return fmt.Errorf("attribution: %w", err)
	}

	if c.Redis.Enabled && strings.TrimSpace(c.Redis.URL) == "" {
		return fmt.Errorf("redis.url is required when redis is enabled")
	}

	if c.NATS.Enabled {
		if strings.TrimSpace(c.NATS.URL) == "" {
			return fmt.Errorf("nats.url is required when nats is enabled")
		}
		if strings.TrimSpace(c.NATS.Subject) == "" {
			return fmt.Errorf("nats.subject is required when nats is enabled")
		}
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (a *AttributionConfig) validate() error {
	if a.DefaultWindowDays <= 0 {
		return fmt.Errorf("default_window_days must be > 0 (got %d)", a.DefaultWindowDays)
	}
	if a.ReviewExpiryDays <= 0 {
		return fmt.Errorf("review_expiry_days must be > 0 (got %d)", a.ReviewExpiryDays)
	}
	if a.BatchSize <= 0 || a.BatchSize > 5000 {
		return fmt.Errorf("batch_size must be in [1, 5000] (got %d)", a.BatchSize)
	}
	if a.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", a.Concurrency)
	}
	if a.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", a.MaxAttempts)
	}
	if a.LockTTL <= 0 {
		return fmt.Errorf("lock_ttl must be > 0 (got %s)", a.LockTTL)
	}

	if a.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0 (got %s)", a.PollInterval)
	}
	if a.ExpiryInterval <= 0 {
		return fmt.Errorf("expiry_interval must be > 0 (got %s)", a.ExpiryInterval)
	}
	if a.StaleAfter <= a.LockTTL {
		return fmt.Errorf("stale_after must exceed lock_ttl (got %s <= %s)", a.StaleAfter, a.LockTTL)
	}

	a.ExtraPersonalDomains = ParseDomainList(a.ExtraPersonalDomainsRaw)

	return nil
}
