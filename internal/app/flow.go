package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/exclusive-events/internal/platform/telemetry"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// ResetDelay is how long a success message stays before the flow returns to
// idle on its own.
const ResetDelay = 5 * time.Second

// AfterFunc runs f once d has elapsed and returns a function that cancels
// the call. It matches the shape of time.AfterFunc so tests can fire timers
// by hand.
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func realAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// FlowOption configures a BookingFlow or ContactFlow.
type FlowOption func(*flowOptions)

type flowOptions struct {
	afterFunc AfterFunc
	newID     func() string
	logger    *slog.Logger
	metrics   *telemetry.Metrics
}

// WithAfterFunc replaces the timer used for the automatic reset.
func WithAfterFunc(f AfterFunc) FlowOption {
	return func(o *flowOptions) { o.afterFunc = f }
}

// WithIDGenerator replaces the submission id generator.
func WithIDGenerator(f func() string) FlowOption {
	return func(o *flowOptions) { o.newID = f }
}

// WithLogger sets the flow's logger.
func WithLogger(l *slog.Logger) FlowOption {
	return func(o *flowOptions) { o.logger = l }
}

// WithMetrics sets the instruments that count submissions.
func WithMetrics(m *telemetry.Metrics) FlowOption {
	return func(o *flowOptions) { o.metrics = m }
}

func newFlowOptions(opts []FlowOption) flowOptions {
	o := flowOptions{
		afterFunc: realAfterFunc,
		newID:     uuid.NewString,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// safeSubmit calls the submitter and turns a panic into an error.
func safeSubmit(ctx context.Context, s ports.Submitter, sub ports.Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s submission %s panicked: %v", sub.Kind, sub.ID, r)
		}
	}()
	return s.Submit(ctx, sub)
}

// closedChan returns an already closed channel, for operations that complete
// without starting a submission.
func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func stopTimer(stop *func() bool) {
	if *stop != nil {
		(*stop)()
		*stop = nil
	}
}
