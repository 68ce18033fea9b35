package fanout_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/exclusive-events/internal/app/fanout"
)

func TestMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		items   []string
		want    []string
	}{
		{name: "empty", workers: 4, items: []string{}, want: []string{}},
		{name: "single worker", workers: 1, items: []string{"news", "services"}, want: []string{"NEWS", "SERVICES"}},
		{name: "more workers than items", workers: 50, items: []string{"a", "b", "c"}, want: []string{"A", "B", "C"}},
		{name: "non-positive workers", workers: -3, items: []string{"x", "y"}, want: []string{"X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fanout.Map(context.Background(), tt.workers, tt.items, func(_ context.Context, s string) string {
				return strings.ToUpper(s)
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMap_OrderIndependentOfCompletion(t *testing.T) {
	t.Parallel()

	delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond, 5 * time.Millisecond}
	got, err := fanout.Map(context.Background(), len(delays), delays, func(_ context.Context, d time.Duration) time.Duration {
		time.Sleep(d)
		return d
	})
	require.NoError(t, err)
	assert.Equal(t, delays, got)
}

func TestMap_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3
	var running, peak atomic.Int32

	items := make([]int, 20)
	_, err := fanout.Map(context.Background(), workers, items, func(context.Context, int) struct{} {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		running.Add(-1)
		return struct{}{}
	})
	require.NoError(t, err)

	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want <= %d", p, workers)
	}
}

func TestMap_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	got, err := fanout.Map(ctx, 2, []int{1, 2, 3}, func(context.Context, int) int {
		calls.Add(1)
		return 1
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{0, 0, 0}, got)
	assert.Zero(t, calls.Load())
}

func TestMap_CanceledMidway(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	got, err := fanout.Map(ctx, 1, []int{1, 2, 3, 4}, func(_ context.Context, n int) int {
		if calls.Add(1) == 2 {
			cancel()
		}
		return n * 10
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, got, 4)
	assert.Equal(t, 10, got[0])
	assert.LessOrEqual(t, calls.Load(), int32(3))
}
