// Package simulated stands in for a form submission backend: it waits a
// configured delay and fails with a configured probability.
package simulated

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen11/exclusive-events/internal/domain"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Compile-time interface check.
var _ ports.Submitter = (*Submitter)(nil)

// Submitter implements [ports.Submitter] without sending anything.
type Submitter struct {
	delay       time.Duration
	failureRate float64
	roll        func() float64
	logger      *slog.Logger
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithRoll replaces the random source. roll must return values in [0, 1).
func WithRoll(roll func() float64) Option {
	return func(s *Submitter) { s.roll = roll }
}

// WithLogger sets the logger accepted submissions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *Submitter) { s.logger = l }
}

// New creates a Submitter from a simulation profile.
func New(cfg config.SimulationConfig, opts ...Option) *Submitter {
	s := &Submitter{
		delay:       cfg.Delay,
		failureRate: cfg.FailureRate,
		roll:        rand.Float64,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit waits for the configured delay, then fails with probability
// failureRate. Failures and cancellation wrap [domain.ErrUnavailable].
func (s *Submitter) Submit(ctx context.Context, sub ports.Submission) error {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return fmt.Errorf("%s submission %s: %w: %w", sub.Kind, sub.ID, domain.ErrUnavailable, ctx.Err())
		case <-timer.C:
		}
	}

	if s.roll() < s.failureRate {
		return fmt.Errorf("%s submission %s: %w: simulated failure", sub.Kind, sub.ID, domain.ErrUnavailable)
	}

	s.logger.InfoContext(ctx, "submission accepted",
		slog.String("form", string(sub.Kind)),
		slog.String("submission_id", sub.ID),
		slog.Int("fields", len(sub.Fields)),
	)
	return nil
}
