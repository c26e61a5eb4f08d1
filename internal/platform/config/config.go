// Package config provides configuration loading and validation for the todo
// list service and its CLI. Configuration is loaded from YAML files with
// environment variable overrides using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Database   DatabaseConfig   `koanf:"database"`
	Cache      CacheConfig      `koanf:"cache"`
	Resilience ResilienceConfig `koanf:"resilience"`
	Pipeline   PipelineConfig   `koanf:"pipeline"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// CORSAllowedOrigins lists the origins allowed to call the API. "*"
	// allows any origin.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Storage drivers accepted by DatabaseConfig.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// DatabaseConfig selects and tunes the storage backend.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	DSN             string        `koanf:"dsn"`
	MaxConns        int32         `koanf:"max_conns"`
	MinConns        int32         `koanf:"min_conns"`
	MaxConnIdleTime time.Duration `koanf:"max_conn_idle_time"`
	MaxConnLifetime time.Duration `koanf:"max_conn_lifetime"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
	Migrate         bool          `koanf:"migrate"`
}

// Cache backends accepted by CacheConfig.Backend.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// CacheConfig holds category cache settings.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	Backend string        `koanf:"backend"`
	TTL     time.Duration `koanf:"ttl"`
	Redis   RedisConfig   `koanf:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// ResilienceConfig holds the named resilience policies. Database wraps every
// repository load and save; Command and Query wrap pipeline requests tagged
// with the matching policy.
type ResilienceConfig struct {
	Database PolicyConfig `koanf:"database"`
	Command  PolicyConfig `koanf:"command"`
	Query    PolicyConfig `koanf:"query"`
}

// PolicyConfig composes a timeout, a retry strategy and a circuit breaker.
type PolicyConfig struct {
	Timeout        time.Duration              `koanf:"timeout"`
	Retry          PolicyRetryConfig          `koanf:"retry"`
	CircuitBreaker PolicyCircuitBreakerConfig `koanf:"circuit_breaker"`
}

// PolicyRetryConfig holds retry settings. MaxRetries counts retries after
// the first attempt. Without Exponential every retry waits Delay.
type PolicyRetryConfig struct {
	MaxRetries  int           `koanf:"max_retries"`
	Delay       time.Duration `koanf:"delay"`
	Exponential bool          `koanf:"exponential"`
	MaxDelay    time.Duration `koanf:"max_delay"`
}

// PolicyCircuitBreakerConfig holds failure-ratio circuit breaker settings.
type PolicyCircuitBreakerConfig struct {
	FailureRatio      float64       `koanf:"failure_ratio"`
	MinimumThroughput int           `koanf:"minimum_throughput"`
	SamplingDuration  time.Duration `koanf:"sampling_duration"`
	BreakDuration     time.Duration `koanf:"break_duration"`
}

// PipelineConfig holds request pipeline settings.
type PipelineConfig struct {
	SlowThreshold time.Duration `koanf:"slow_threshold"`
}

// ClientConfig holds the todoctl HTTP client settings for calling the API.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds consecutive-failure circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. Zero disables it.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
