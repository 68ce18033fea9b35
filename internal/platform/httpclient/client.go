// Package httpclient is the outbound HTTP client of the site. The only
// downstream is the static asset host, probed with HEAD requests to learn
// whether the brochure PDF is published.
//
// A request passes, in order, through the circuit breaker, the rate limiter,
// header propagation, a client span and the retry loop:
//
//	client := httpclient.New(&cfg.Client, "asset-host", metrics, logger)
//	status, err := client.Head(ctx, "/carte-Isaac-Alyam.pdf")
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
)

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter
	retryCfg    retryConfig
	metrics     *telemetry.Metrics
}

// New builds a client for the service at cfg.BaseURL. serviceName labels
// spans, metrics and breaker logs. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
	}

	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Do sends req. A response whose status stayed retryable after the last
// attempt comes back together with a *StatusError; in every case a non-nil
// response must be closed by the caller. When the breaker is open Do fails
// with gobreaker.ErrOpenState without touching the network.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s rate limit: %w", c.serviceName, err)
			}
		}

		ctx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(ctx)
		propagate(ctx, req.Header)

		var resp *http.Response
		err := c.send(ctx, req, &resp)
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return resp, err
	})

	c.record(ctx, req.Method, start, resp, err)
	return resp, err
}

// Head sends HEAD for path, taken relative to the base URL, and returns the
// status. The body is always discarded.
func (c *Client) Head(ctx context.Context, path string) (int, error) {
	target, err := c.resolve(path)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("HEAD %s: %w", target, err)
	}

	resp, err := c.Do(ctx, req)
	if resp != nil {
		discard(resp)
	}
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

// resolve appends path to the base URL, keeping any base path prefix.
// Absolute URLs pass through unchanged.
func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parsing path %q: %w", path, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(strings.TrimSuffix(c.baseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", c.baseURL, err)
	}
	rel := &url.URL{Path: strings.TrimPrefix(ref.Path, "/"), RawQuery: ref.RawQuery}
	return base.ResolveReference(rel).String(), nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream in readiness reports.
func (c *Client) Name() string { return c.serviceName }

// HealthCheck reads the breaker state and makes no request. A half-open
// breaker reports degraded, an open one failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: circuit breaker in state %v", c.serviceName, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	return otel.Tracer("httpclient").Start(ctx, req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
}

// record emits the client metrics, breaker rejections included.
func (c *Client) record(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	return uint32(min(max(v, 0), math.MaxUint32))
}
