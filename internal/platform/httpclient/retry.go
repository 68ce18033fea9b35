package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/logging"
)

// jitter is the randomization factor applied to every backoff interval.
const jitter = 0.25

// StatusError reports a response whose status was still retryable when the
// attempts ran out.
type StatusError struct {
	Service string
	Status  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered HTTP %d", e.Service, e.Status)
}

// policy builds a fresh exponential backoff from the configured intervals.
func (r retryConfig) policy() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.Multiplier = r.multiplier
	b.RandomizationFactor = jitter
	return b
}

// send runs req until it yields a non-retryable outcome or the attempts run
// out. Intermediate responses are drained; the final one, if any, is stored
// in *resp with its body open. It is an out-parameter so the caller owns the
// body close.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	rewind, err := replayable(req)
	if err != nil {
		return err
	}

	var (
		attempt int
		last    *http.Response
	)
	attemptOnce := func() (*http.Response, error) {
		if last != nil {
			discard(last)
			last = nil
		}
		attempt++
		if err := rewind(); err != nil {
			return nil, backoff.Permanent(err)
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(r.StatusCode) {
			return r, nil
		}
		last = r
		return r, &StatusError{Service: c.serviceName, Status: r.StatusCode}
	}

	notify := func(err error, wait time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.serviceName),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retryCfg.maxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
	}

	r, err := backoff.Retry(ctx, attemptOnce,
		backoff.WithBackOff(c.retryCfg.policy()),
		backoff.WithMaxTries(uint(c.retryCfg.maxAttempts)),
		backoff.WithNotify(notify),
	)
	*resp = r
	return err
}

// replayable returns a function that restores req.Body before each attempt.
// Requests built by http.NewRequest over an in-memory reader already carry
// GetBody; other bodies are read once and buffered.
func replayable(req *http.Request) (func() error, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return func() error { return nil }, nil
	}

	if req.GetBody == nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		_ = req.Body.Close()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(b)), nil
		}
		req.Body, _ = req.GetBody()
		req.ContentLength = int64(len(b))
	}

	first := true
	return func() error {
		if first {
			first = false
			return nil
		}
		body, err := req.GetBody()
		if err != nil {
			return fmt.Errorf("rewinding request body: %w", err)
		}
		req.Body = body
		return nil
	}, nil
}

// discard drains and closes a response body so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else, network errors
// included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports 429 and 5xx.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
