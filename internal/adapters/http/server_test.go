package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/exclusive-events/internal/adapters/http"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{host: "127.0.0.1", port: 9090, want: "127.0.0.1:9090"},
		{host: "0.0.0.0", port: 8080, want: "0.0.0.0:8080"},
		{host: "", port: 8080, want: ":8080"},
		{host: "::1", port: 8080, want: "[::1]:8080"},
	}

	for _, tt := range tests {
		s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: tt.port}, http.NotFoundHandler(), nil)
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestServer_ServeUntilCanceled(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second},
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "ok") }),
		discardLogger())

	ln := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServer_DrainsInFlightRequest(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	s := adapthttp.NewServer(config.ServerConfig{},
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			close(started)
			time.Sleep(100 * time.Millisecond)
			_, _ = io.WriteString(w, "finished")
		}),
		discardLogger(), adapthttp.WithDrainTimeout(5*time.Second))

	ln := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	type result struct {
		body string
		err  error
	}
	got := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			got <- result{err: err}
			return
		}
		defer func() { _ = resp.Body.Close() }()
		b, err := io.ReadAll(resp.Body)
		got <- result{body: string(b), err: err}
	}()

	<-started
	cancel()

	r := <-got
	require.NoError(t, r.err)
	assert.Equal(t, "finished", r.body)
	require.NoError(t, <-done)
}

func TestServer_DrainTimeout(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	s := adapthttp.NewServer(config.ServerConfig{},
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			close(started)
			<-release
		}),
		discardLogger(), adapthttp.WithDrainTimeout(30*time.Millisecond))

	ln := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err == nil {
			_ = resp.Body.Close()
		}
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-done, context.DeadlineExceeded)
}

func TestServer_RunAddressInUse(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	t.Cleanup(func() { _ = ln.Close() })

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	p, err := net.LookupPort("tcp", port)
	require.NoError(t, err)

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: p}, http.NotFoundHandler(), discardLogger())
	err = s.Run(context.Background())
	assert.ErrorContains(t, err, "listening on")
}
