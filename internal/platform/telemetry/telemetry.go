// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "my-service", "stdout", "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "my-service", "stdout", "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp, "exclusive-events")
//	metrics.RecordSubmission(ctx, "contact", "success")
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ErrUnsupportedExporter is returned for an exporter name other than
// ExporterStdout or ExporterOTLP.
var ErrUnsupportedExporter = errors.New("telemetry: unsupported exporter")

// ErrMissingEndpoint is returned when the OTLP exporter has no endpoint.
var ErrMissingEndpoint = errors.New("telemetry: otlp exporter requires an endpoint")

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrForm        = attribute.Key("form")
	AttrResource    = attribute.Key("content.resource")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// FormSubmissionTotal counts booking and contact submissions by result.
	FormSubmissionTotal metric.Int64Counter
	// ContentFallbackTotal counts content resources replaced by their fallback.
	ContentFallbackTotal metric.Int64Counter
	// ContentEntityDroppedTotal counts entities rejected by shape validation.
	ContentEntityDroppedTotal metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "otlp" uses OTLP/HTTP
// with the given endpoint and "stdout" uses a pretty-printed stdout exporter
// for development.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// The exporter parameter selects the metric exporter: "otlp" uses OTLP/HTTP
// with the given endpoint and "stdout" uses a stdout exporter.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	if err := checkExporter(exporter, endpoint); err != nil {
		return nil, err
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to the service name.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var errs []error
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}

	m := &Metrics{
		ServerRequestDuration: histogram("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}"),
		ClientRequestDuration: histogram("http.client.request.duration", "Duration of outgoing HTTP requests"),
		ClientRequestTotal:    counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}"),

		FormSubmissionTotal:       counter("form.submission.total", "Booking and contact form submissions", "{submission}"),
		ContentFallbackTotal:      counter("content.fallback.total", "Content resources replaced by their fallback", "{resource}"),
		ContentEntityDroppedTotal: counter("content.entity.dropped.total", "Content entities rejected by validation", "{entity}"),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// NewNoopMetrics returns instruments that record nothing, for tests and for
// components built without a meter provider.
func NewNoopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider(), "noop")
	return m
}

// RecordSubmission counts a form submission outcome.
func (m *Metrics) RecordSubmission(ctx context.Context, form, result string) {
	if m == nil {
		return
	}
	m.FormSubmissionTotal.Add(ctx, 1, metric.WithAttributes(AttrForm.String(form), AttrResult.String(result)))
}

// RecordFallback counts a content resource that fell back to its default.
func (m *Metrics) RecordFallback(ctx context.Context, resource string) {
	if m == nil {
		return
	}
	m.ContentFallbackTotal.Add(ctx, 1, metric.WithAttributes(AttrResource.String(resource)))
}

// RecordDropped counts content entities rejected by validation.
func (m *Metrics) RecordDropped(ctx context.Context, resource string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.ContentEntityDroppedTotal.Add(ctx, int64(n), metric.WithAttributes(AttrResource.String(resource)))
}

func checkExporter(exporter, endpoint string) error {
	switch exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if endpoint == "" {
			return ErrMissingEndpoint
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedExporter, exporter)
	}
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	if exporter != ExporterOTLP {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, insecure := otlpTarget(endpoint)
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	if exporter != ExporterOTLP {
		return stdoutmetric.New()
	}
	host, insecure := otlpTarget(endpoint)
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// otlpTarget splits a collector URL such as "http://otel-collector:4318"
// into the host:port the exporters want and whether TLS is off. A bare
// host:port is taken as plaintext.
func otlpTarget(endpoint string) (host string, insecure bool) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, true
	}
	return u.Host, u.Scheme != "https"
}
