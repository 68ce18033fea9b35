package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/middleware"
)

var uuidV4 = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "absent", header: ""},
		{name: "plausible token", header: "req-abc_123.x", wantKeep: true},
		{name: "log injection", header: "abc\nlevel=ERROR msg=forged"},
		{name: "spaces", header: "two words"},
		{name: "too long", header: strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = middleware.RequestIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Request-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if tt.wantKeep {
				assert.Equal(t, tt.header, got)
			} else {
				assert.Regexp(t, uuidV4, got)
			}
			assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]bool)
	for range 50 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		id := rec.Header().Get("X-Request-ID")
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "propagated", header: "corr-abc", want: "corr-abc"},
		{name: "absent falls back to request id", header: "", want: "req-1"},
		{name: "rejected falls back to request id", header: "<script>", want: "req-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := middleware.RequestID()(middleware.CorrelationID()(
				http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					got = middleware.CorrelationIDFromContext(r.Context())
				})))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set("X-Request-ID", "req-1")
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", got, tt.want)
			}
			if h := rec.Header().Get("X-Correlation-ID"); h != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", h, tt.want)
			}
		})
	}
}

func TestIDsFromContext_Missing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "r"), "c")
	assert.Equal(t, "r", middleware.RequestIDFromContext(ctx))
	assert.Equal(t, "c", middleware.CorrelationIDFromContext(ctx))
}
