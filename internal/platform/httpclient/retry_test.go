package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

func TestRetryConfig_Policy(t *testing.T) {
	t.Parallel()

	rc := retryConfig{
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		multiplier:      3,
	}
	b := rc.policy()

	assert.Equal(t, 50*time.Millisecond, b.InitialInterval)
	assert.Equal(t, time.Second, b.MaxInterval)
	assert.InDelta(t, 3.0, b.Multiplier, 0)
	assert.InDelta(t, jitter, b.RandomizationFactor, 0)

	first := b.NextBackOff()
	lo := time.Duration(float64(50*time.Millisecond) * (1 - jitter))
	hi := time.Duration(float64(50*time.Millisecond) * (1 + jitter))
	if first < lo || first > hi {
		t.Errorf("first interval = %v, want within [%v, %v]", first, lo, hi)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("head: %w", context.DeadlineExceeded), want: false},
		{name: "dial failure", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("EOF"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, false},
		{http.StatusNotModified, false},
		{http.StatusNotFound, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusBadGateway, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		if got := isRetryableStatus(tt.status); got != tt.want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

// onceReader hides its concrete type so http.NewRequest cannot set GetBody.
type onceReader struct{ io.Reader }

func TestReplayable_BuffersOpaqueBody(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, "http://assets.test/", onceReader{Reader: strings.NewReader("payload")})
	require.NoError(t, err)
	require.Nil(t, req.GetBody)

	rewind, err := replayable(req)
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), req.ContentLength)

	for i := range 3 {
		require.NoError(t, rewind())
		b, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		if string(b) != "payload" {
			t.Errorf("attempt %d body = %q, want %q", i+1, b, "payload")
		}
	}
}

func TestReplayable_NoBody(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodHead, "http://assets.test/carte.pdf", http.NoBody)
	require.NoError(t, err)

	rewind, err := replayable(req)
	require.NoError(t, err)
	require.NoError(t, rewind())
	require.NoError(t, rewind())
}

func TestSend_ExhaustedReturnsStatusError(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := New(&config.ClientConfig{
		BaseURL: srv.URL,
		Timeout: time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 10, Timeout: time.Second, HalfOpenLimit: 1},
	}, "asset-host", nil, slog.New(slog.DiscardHandler))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodHead, srv.URL+"/carte.pdf", http.NoBody)
	require.NoError(t, err)

	var resp *http.Response
	err = c.send(context.Background(), req, &resp)
	require.NotNil(t, resp)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Status)
	assert.Equal(t, "asset-host", se.Service)
	assert.Equal(t, int32(2), hits.Load())
}

func TestSend_RejectsZeroAttempts(t *testing.T) {
	t.Parallel()

	c := &Client{retryCfg: retryConfig{maxAttempts: 0}}
	req := httptest.NewRequest(http.MethodHead, "/", http.NoBody)

	var resp *http.Response
	require.Error(t, c.send(context.Background(), req, &resp))
	assert.Nil(t, resp)
}
