package telemetry

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Settings selects the exporter pair installed by Setup.
type Settings struct {
	ServiceName string
	Exporter    string
	Endpoint    string
}

// Providers owns the global tracer and meter providers installed by Setup.
// The zero value stands for disabled telemetry: Metrics is nil and Shutdown
// does nothing.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Setup installs the global providers and registers the site's instruments.
// Nothing is left installed when it fails.
func Setup(ctx context.Context, s Settings) (*Providers, error) {
	tp, err := InitTracer(ctx, s.ServiceName, s.Exporter, s.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	p := &Providers{Tracer: tp}

	p.Meter, err = InitMeter(ctx, s.ServiceName, s.Exporter, s.Endpoint)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	p.Metrics, err = NewMetrics(p.Meter, s.ServiceName)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return p, nil
}

// Shutdown flushes pending spans and metric points.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}
