package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
)

// These tests swap the global tracer provider and propagator, so none of them
// run in parallel.

func installTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return exporter
}

func siteRouter(metrics *telemetry.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(metrics))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Post("/testimonials/{id}/recommend", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	r.Post("/contact", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/brochure", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	return r
}

func spanAttrs(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(span.Attributes))
	for _, kv := range span.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestOpenTelemetry_Spans(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantName   string
		wantStatus int
		wantCode   codes.Code
	}{
		{
			name:       "home page",
			method:     http.MethodGet,
			path:       "/",
			wantName:   "HTTP GET /",
			wantStatus: http.StatusOK,
			wantCode:   codes.Unset,
		},
		{
			name:       "recommend uses route pattern",
			method:     http.MethodPost,
			path:       "/testimonials/t2/recommend",
			wantName:   "HTTP POST /testimonials/{id}/recommend",
			wantStatus: http.StatusSeeOther,
			wantCode:   codes.Unset,
		},
		{
			name:       "client error is not a span error",
			method:     http.MethodPost,
			path:       "/contact",
			wantName:   "HTTP POST /contact",
			wantStatus: http.StatusBadRequest,
			wantCode:   codes.Unset,
		},
		{
			name:       "server error marks span",
			method:     http.MethodGet,
			path:       "/brochure",
			wantName:   "HTTP GET /brochure",
			wantStatus: http.StatusBadGateway,
			wantCode:   codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := installTracer(t)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			siteRouter(nil).ServeHTTP(httptest.NewRecorder(), req)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			span := spans[0]
			assert.Equal(t, tt.wantName, span.Name)
			assert.Equal(t, tt.wantCode, span.Status.Code)

			attrs := spanAttrs(span)
			assert.Equal(t, tt.method, attrs["http.method"].AsString())
			assert.Equal(t, tt.path, attrs["http.target"].AsString())
			assert.Equal(t, int64(tt.wantStatus), attrs["http.status_code"].AsInt64())
		})
	}
}

func TestOpenTelemetry_OutsideRouterUsesPath(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.OpenTelemetry(nil)(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pdf", http.NoBody))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /pdf", spans[0].Name)
}

func TestOpenTelemetry_ContinuesInboundTrace(t *testing.T) {
	exporter := installTracer(t)

	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Traceparent", traceparent)
	siteRouter(nil).ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent.SpanID().String())
}

func TestOpenTelemetry_TagsRequestID(t *testing.T) {
	exporter := installTracer(t)

	handler := middleware.Chain(middleware.RequestID(), middleware.OpenTelemetry(nil))(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "visit-42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "visit-42", spanAttrs(spans[0])["request.id"].AsString())
}

func TestOpenTelemetry_RecordsMetrics(t *testing.T) {
	installTracer(t)

	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "exclusive-events")
	require.NoError(t, err)

	router := siteRouter(metrics)
	for _, id := range []string{"t1", "t2", "t3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/testimonials/"+id+"/recommend", http.NoBody))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/contact", http.NoBody))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byRoute := map[string]int64{}
	outcome := map[string]string{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
				result, _ := dp.Attributes.Value(telemetry.AttrResult)
				byRoute[route.AsString()] += dp.Value
				outcome[route.AsString()] = result.AsString()
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"/testimonials/{id}/recommend": 3,
		"/contact":                     1,
	}, byRoute)
	assert.Equal(t, "success", outcome["/testimonials/{id}/recommend"])
	assert.Equal(t, "error", outcome["/contact"])
}

func TestOpenTelemetry_NilMetrics(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	middleware.OpenTelemetry(nil)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, rec.Code)
}
