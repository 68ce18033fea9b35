package httpclient

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID marks ctx so outbound requests carry X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID marks ctx so outbound requests carry X-Correlation-ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// propagate copies the inbound ids and the trace context of ctx onto h.
func propagate(ctx context.Context, h http.Header) {
	for header, key := range map[string]any{
		"X-Request-ID":     requestIDKey{},
		"X-Correlation-ID": correlationIDKey{},
	} {
		if id, _ := ctx.Value(key).(string); id != "" {
			h.Set(header, id)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))
}
