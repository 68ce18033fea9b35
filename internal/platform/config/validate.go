package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// csrfKeyLength is the decoded length of security.csrf_key.
const csrfKeyLength = 32

// EmptyStateSections are the keys accepted under site.empty_states.
var EmptyStateSections = []string{
	"services", "testimonials", "references", "news", "calendar", "values", "default",
}

// problems collects validation failures for one load.
type problems []error

func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (p *problems) add(err error) {
	if err != nil {
		*p = append(*p, err)
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var p problems
	c.App.validate(&p)
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.Telemetry.validate(&p)
	c.Content.validate(&p)
	c.Session.validate(&p)
	p.add(c.Security.validate())
	c.Submission.Booking.validate(&p, "submission.booking")
	c.Submission.Contact.validate(&p, "submission.contact")
	c.Site.validate(&p)
	return errors.Join(p...)
}

func (a *AppConfig) validate(p *problems) {
	p.require(a.Environment == EnvDevelopment || a.Environment == EnvProduction,
		"app.environment must be one of: development, production; got %q", a.Environment)
}

func (s *ServerConfig) validate(p *problems) {
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(s.RequestTimeout >= 0, "server.request_timeout must not be negative")
}

func (l *LogConfig) validate(p *problems) {
	p.require(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level must be one of: debug, info, warn, error; got %q", l.Level)
	p.require(l.Format == "json" || l.Format == "text",
		"log.format must be one of: json, text; got %q", l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	p.require(cl.BaseURL != "", "client.base_url must not be empty")
	p.require(cl.Timeout > 0, "client.timeout must be positive")
	p.require(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.require(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.require(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.require(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.require(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1, got %d", rl.BurstSize)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.require(t.Exporter == "stdout" || t.Exporter == "otlp",
		"telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter)
	p.require(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint must not be empty when exporter is otlp")
}

func (c *ContentConfig) validate(p *problems) {
	p.require(c.MaxWorkers >= 1, "content.max_workers must be >= 1, got %d", c.MaxWorkers)
}

func (s *SessionConfig) validate(p *problems) {
	p.require(strings.TrimSpace(s.CookieName) != "", "session.cookie_name must not be empty")
	p.require(s.IdleTimeout > 0, "session.idle_timeout must be positive")
	p.require(s.SweepInterval > 0, "session.sweep_interval must be positive")
	p.require(s.MaxSessions >= 1, "session.max_sessions must be >= 1, got %d", s.MaxSessions)
}

func (s *SecurityConfig) validate() error {
	_, err := s.CSRFKeyBytes()
	return err
}

// CSRFKeyBytes decodes security.csrf_key. It returns nil, nil when no key is
// configured.
func (s *SecurityConfig) CSRFKeyBytes() ([]byte, error) {
	if s.CSRFKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(s.CSRFKey)
	if err != nil {
		return nil, fmt.Errorf("security.csrf_key must be hex encoded: %w", err)
	}
	if len(key) != csrfKeyLength {
		return nil, fmt.Errorf("security.csrf_key must decode to %d bytes, got %d", csrfKeyLength, len(key))
	}
	return key, nil
}

func (s *SimulationConfig) validate(p *problems, prefix string) {
	p.require(s.Delay >= 0, "%s.delay must not be negative", prefix)
	p.require(s.FailureRate >= 0 && s.FailureRate <= 1,
		"%s.failure_rate must be between 0 and 1, got %g", prefix, s.FailureRate)
}

func (s *SiteConfig) validate(p *problems) {
	p.require(strings.TrimSpace(s.Brand.Name) != "", "site.brand.name must not be empty")
	p.require(s.PDF.Path == "" || strings.HasPrefix(s.PDF.Path, "/"),
		"site.pdf.path must be absolute, got %q", s.PDF.Path)
	p.require(s.PDF.ProbeTTL >= 0, "site.pdf.probe_ttl must not be negative")
	for section := range s.EmptyStates {
		p.require(slices.Contains(EmptyStateSections, section),
			"site.empty_states.%s is not a known section", section)
	}
}
