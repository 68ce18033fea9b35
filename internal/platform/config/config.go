// Package config provides configuration loading and validation for the site.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the site.
type Config struct {
	App        AppConfig        `koanf:"app"`
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
	Content    ContentConfig    `koanf:"content"`
	Session    SessionConfig    `koanf:"session"`
	Security   SecurityConfig   `koanf:"security"`
	Submission SubmissionConfig `koanf:"submission"`
	Site       SiteConfig       `koanf:"site"`
}

// AppConfig identifies the running deployment.
type AppConfig struct {
	Name string `koanf:"name"`
	// Environment is "development" or "production". Development enables
	// content diagnostics in the logs.
	Environment string `koanf:"environment"`
}

// IsDevelopment reports whether content diagnostics are enabled.
func (a AppConfig) IsDevelopment() bool {
	return a.Environment == EnvDevelopment
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the HTTP client that probes static assets.
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

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side token bucket settings.
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

// ContentConfig controls where content documents are read from.
type ContentConfig struct {
	// Dir overrides the embedded content with a directory on disk. Empty
	// means embedded content.
	Dir string `koanf:"dir"`
	// Reload rebuilds the catalog on every page request.
	Reload     bool `koanf:"reload"`
	MaxWorkers int  `koanf:"max_workers"`
}

// SessionConfig holds visitor session settings.
type SessionConfig struct {
	CookieName    string        `koanf:"cookie_name"`
	IdleTimeout   time.Duration `koanf:"idle_timeout"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	MaxSessions   int           `koanf:"max_sessions"`
}

// SecurityConfig holds CSRF protection settings.
type SecurityConfig struct {
	// CSRFKey is a 32-byte key, hex encoded.
	CSRFKey        string   `koanf:"csrf_key"`
	PlaintextHTTP  bool     `koanf:"plaintext_http"`
	TrustedOrigins []string `koanf:"trusted_origins"`
}

// SubmissionConfig configures the simulated form submissions.
type SubmissionConfig struct {
	Booking SimulationConfig `koanf:"booking"`
	Contact SimulationConfig `koanf:"contact"`
}

// SimulationConfig is the latency and failure probability of a simulated
// submission.
type SimulationConfig struct {
	Delay       time.Duration `koanf:"delay"`
	FailureRate float64       `koanf:"failure_rate"`
}

// SiteConfig is the brand copy and business details shown on the page.
type SiteConfig struct {
	BaseURL     string                `koanf:"base_url"`
	Brand       BrandConfig           `koanf:"brand"`
	Contact     ContactConfig         `koanf:"contact"`
	Socials     map[string]string     `koanf:"socials"`
	Business    BusinessConfig        `koanf:"business"`
	Colors      map[string]string     `koanf:"colors"`
	PDF         PDFConfig             `koanf:"pdf"`
	Meta        MetaConfig            `koanf:"meta"`
	EmptyStates map[string]EmptyState `koanf:"empty_states"`
}

// BrandConfig holds the brand names and slogans.
type BrandConfig struct {
	Name     string `koanf:"name"`
	Subtitle string `koanf:"subtitle"`
	Slogan   string `koanf:"slogan"`
	Tagline  string `koanf:"tagline"`
}

// ContactConfig holds the public contact details.
type ContactConfig struct {
	Email          string `koanf:"email"`
	Phone          string `koanf:"phone"`
	Address        string `koanf:"address"`
	WhatsAppNumber string `koanf:"whatsapp_number"`
}

// BusinessConfig holds the company facts quoted in the footer.
type BusinessConfig struct {
	Founded    string `koanf:"founded"`
	Experience string `koanf:"experience"`
	Location   string `koanf:"location"`
	Speciality string `koanf:"speciality"`
}

// PDFConfig locates the downloadable brochure.
type PDFConfig struct {
	Path     string        `koanf:"path"`
	FileName string        `koanf:"file_name"`
	ProbeTTL time.Duration `koanf:"probe_ttl"`
}

// MetaConfig holds the document head metadata.
type MetaConfig struct {
	Title       string `koanf:"title"`
	Description string `koanf:"description"`
	Keywords    string `koanf:"keywords"`
}

// EmptyState overrides the copy of a section's empty state. Blank fields keep
// the built-in copy.
type EmptyState struct {
	Title   string `koanf:"title"`
	Message string `koanf:"message"`
}
