package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Database.validate(),
		c.Cache.validate(),
		c.Resilience.validate(),
		c.Pipeline.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (d *DatabaseConfig) validate() error {
	var errs []error

	switch d.Driver {
	case DriverMemory:
		return nil
	case DriverPostgres:
		// Checked below.
	default:
		return fmt.Errorf("database.driver must be one of: %s, %s; got %q", DriverPostgres, DriverMemory, d.Driver)
	}

	if d.DSN == "" {
		errs = append(errs, errors.New("database.dsn must not be empty when driver is postgres"))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns must be between 0 and max_conns, got %d", d.MinConns))
	}
	if d.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("database.connect_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (c *CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}

	var errs []error

	switch c.Backend {
	case CacheMemory:
		// Valid backend.
	case CacheRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("cache.redis.addr must not be empty when backend is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend must be one of: %s, %s; got %q", CacheMemory, CacheRedis, c.Backend))
	}

	if c.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}

	return errors.Join(errs...)
}

func (r *ResilienceConfig) validate() error {
	return errors.Join(
		r.Database.validate("resilience.database"),
		r.Command.validate("resilience.command"),
		r.Query.validate("resilience.query"),
	)
}

func (p *PolicyConfig) validate(prefix string) error {
	var errs []error

	if p.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if p.Retry.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("%s.retry.max_retries must be >= 0, got %d", prefix, p.Retry.MaxRetries))
	}
	if p.Retry.MaxRetries > 0 && p.Retry.Delay <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.delay must be positive", prefix))
	}
	if p.Retry.MaxDelay > 0 && p.Retry.MaxDelay < p.Retry.Delay {
		errs = append(errs, fmt.Errorf("%s.retry.max_delay must be >= retry.delay", prefix))
	}

	cb := p.CircuitBreaker
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.failure_ratio must be in (0, 1], got %g", prefix, cb.FailureRatio))
	}
	if cb.MinimumThroughput < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.minimum_throughput must be >= 1, got %d",
			prefix, cb.MinimumThroughput))
	}
	if cb.SamplingDuration <= 0 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.sampling_duration must be positive", prefix))
	}
	if cb.BreakDuration <= 0 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.break_duration must be positive", prefix))
	}

	return errors.Join(errs...)
}

func (p *PipelineConfig) validate() error {
	if p.SlowThreshold <= 0 {
		return errors.New("pipeline.slow_threshold must be positive")
	}
	return nil
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	} else if u, err := url.Parse(cl.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("client.base_url must be an absolute http or https URL, got %q", cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %g",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
