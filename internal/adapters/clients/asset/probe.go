// Package asset checks that downloadable static assets, such as the brochure
// PDF, are actually served by the asset host.
package asset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Compile-time interface check.
var _ ports.AssetProbe = (*Probe)(nil)

// HeadClient issues HEAD requests. Satisfied by *httpclient.Client.
type HeadClient interface {
	Head(ctx context.Context, path string) (int, error)
}

type result struct {
	exists  bool
	checked time.Time
}

// Probe implements [ports.AssetProbe]. Results are cached per path for the
// configured TTL so a page render does not cost a round trip. Concurrent
// misses on one path share a single HEAD request.
type Probe struct {
	client   HeadClient
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
	inflight singleflight.Group

	mu    sync.Mutex
	cache map[string]result
}

// NewProbe creates a Probe. A ttl of zero disables caching.
func NewProbe(client HeadClient, ttl time.Duration, logger *slog.Logger) *Probe {
	return &Probe{
		client: client,
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
		cache:  make(map[string]result),
	}
}

// Exists reports whether HEAD path answers with a 2xx status. Transport
// errors and open circuit breakers count as absent.
func (p *Probe) Exists(ctx context.Context, path string) bool {
	if r, ok := p.cached(path); ok {
		return r
	}

	v, _, _ := p.inflight.Do(path, func() (any, error) {
		// The previous flight may have filled the cache since the check above.
		if r, ok := p.cached(path); ok {
			return r, nil
		}
		return p.head(ctx, path), nil
	})
	exists, _ := v.(bool)
	return exists
}

func (p *Probe) head(ctx context.Context, path string) bool {
	status, err := p.client.Head(ctx, path)
	exists := err == nil && status >= 200 && status < 300
	if err != nil {
		p.logger.WarnContext(ctx, "asset probe failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}

	// A canceled request says nothing about the asset.
	if ctx.Err() == nil {
		p.mu.Lock()
		p.cache[path] = result{exists: exists, checked: p.now()}
		p.mu.Unlock()
	}
	return exists
}

func (p *Probe) cached(path string) (exists, ok bool) {
	if p.ttl <= 0 {
		return false, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	r, found := p.cache[path]
	if !found || p.now().Sub(r.checked) >= p.ttl {
		return false, false
	}
	return r.exists, true
}

// SetClock replaces the probe's time source.
func (p *Probe) SetClock(now func() time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = now
}
