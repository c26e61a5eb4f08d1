package config

const (
	defaultServerPort = 8080

	defaultDBMaxConns = 10
	defaultDBMinConns = 2

	defaultPolicyMaxRetries        = 3
	defaultPolicyFailureRatio      = 0.5
	defaultPolicyMinimumThroughput = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	d := map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "60s",
		"server.idle_timeout":  "120s",

		"server.request_timeout":      "30s",
		"server.cors_allowed_origins": []string{"*"},

		"log.level":  "info",
		"log.format": "json",

		"database.driver":             DriverPostgres,
		"database.dsn":                "",
		"database.max_conns":          defaultDBMaxConns,
		"database.min_conns":          defaultDBMinConns,
		"database.max_conn_idle_time": "5m",
		"database.max_conn_lifetime":  "30m",
		"database.connect_timeout":    "3s",
		"database.migrate":            true,

		"cache.enabled":        true,
		"cache.backend":        CacheMemory,
		"cache.ttl":            "60m",
		"cache.redis.addr":     "localhost:6379",
		"cache.redis.password": "",
		"cache.redis.db":       0,

		"pipeline.slow_threshold": "500ms",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todolist-service",
	}

	for name, timeout := range map[string]string{
		"database": "10s",
		"command":  "30s",
		"query":    "10s",
	} {
		prefix := "resilience." + name + "."
		d[prefix+"timeout"] = timeout
		d[prefix+"retry.max_retries"] = defaultPolicyMaxRetries
		d[prefix+"retry.delay"] = "1s"
		d[prefix+"retry.exponential"] = true
		d[prefix+"retry.max_delay"] = "8s"
		d[prefix+"circuit_breaker.failure_ratio"] = defaultPolicyFailureRatio
		d[prefix+"circuit_breaker.minimum_throughput"] = defaultPolicyMinimumThroughput
		d[prefix+"circuit_breaker.sampling_duration"] = "30s"
		d[prefix+"circuit_breaker.break_duration"] = "30s"
	}

	return d
}
