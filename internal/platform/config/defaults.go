package config

const (
	// EnvDevelopment enables content diagnostics.
	EnvDevelopment = "development"
	// EnvProduction is the default environment.
	EnvProduction = "production"
)

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 10

	defaultContentWorkers = 4
	defaultMaxSessions    = 10000

	defaultContactFailureRate = 0.05
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "exclusive-events",
		"app.environment": EnvProduction,

		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "20s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "5s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "2s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",

		"content.dir":         "",
		"content.reload":      false,
		"content.max_workers": defaultContentWorkers,

		"session.cookie_name":    "ie_session",
		"session.idle_timeout":   "30m",
		"session.sweep_interval": "1m",
		"session.max_sessions":   defaultMaxSessions,

		"security.csrf_key":       "",
		"security.plaintext_http": false,

		"submission.booking.delay":        "2s",
		"submission.booking.failure_rate": 0.0,
		"submission.contact.delay":        "2s",
		"submission.contact.failure_rate": defaultContactFailureRate,

		"site.pdf.path":      "/carte-Isaac-Alyam.pdf",
		"site.pdf.file_name": "Isaac-Alyam-Carte-Exclusive-Events.pdf",
		"site.pdf.probe_ttl": "5m",
	}
}
