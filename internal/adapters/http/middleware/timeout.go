package middleware

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/view"
)

// Timeout bounds each request to d. The handler runs on its own goroutine
// against a buffered response; if it has not returned by the deadline the
// client gets a 504 (the fatal page, or a problem document for JSON
// clients) and whatever the handler writes afterwards is discarded. The
// request context carries the deadline. A handler panic is re-raised on the
// serving goroutine so Recovery still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			finished := make(chan any, 1)
			go func() {
				defer func() { finished <- recover() }()
				next.ServeHTTP(buf, r.WithContext(ctx))
			}()

			select {
			case p := <-finished:
				if p != nil {
					panic(p)
				}
				buf.copyTo(w)
			case <-ctx.Done():
				buf.expire()
				writeTimeout(w, r, d)
			}
		})
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request, d time.Duration) {
	if wantsJSON(r) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, context.DeadlineExceeded))
		return
	}
	view.WriteFatalStatus(w, http.StatusGatewayTimeout)
}

// bufferedResponse holds a handler's response until it is known to have
// finished in time.
type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	status  int
	body    bytes.Buffer
	expired bool
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired || b.status != 0 {
		return
	}
	b.status = code
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// expire makes every later write fail with http.ErrHandlerTimeout.
func (b *bufferedResponse) expire() {
	b.mu.Lock()
	b.expired = true
	b.mu.Unlock()
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}
