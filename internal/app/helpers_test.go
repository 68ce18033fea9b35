package app_test

import (
	"sync"
	"time"

	"github.com/jsamuelsen11/exclusive-events/internal/domain/availability"
)

// fakeTimers records AfterFunc calls so tests can fire them by hand.
type fakeTimers struct {
	mu      sync.Mutex
	pending []*fakeTimer
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (ft *fakeTimers) AfterFunc(d time.Duration, f func()) func() bool {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	t := &fakeTimer{d: d, f: f}
	ft.pending = append(ft.pending, t)
	return func() bool {
		ft.mu.Lock()
		defer ft.mu.Unlock()
		was := !t.stopped
		t.stopped = true
		return was
	}
}

// Fire runs every timer that has not been stopped and reports how many ran.
func (ft *fakeTimers) Fire() int {
	ft.mu.Lock()
	var run []func()
	for _, t := range ft.pending {
		if !t.stopped {
			t.stopped = true
			run = append(run, t.f)
		}
	}
	ft.pending = nil
	ft.mu.Unlock()

	for _, f := range run {
		f()
	}
	return len(run)
}

// Delays returns the durations of the timers still pending.
func (ft *fakeTimers) Delays() []time.Duration {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	var out []time.Duration
	for _, t := range ft.pending {
		if !t.stopped {
			out = append(out, t.d)
		}
	}
	return out
}

func christmasCalendar(booked ...string) availability.Calendar {
	return availability.Calendar{
		Slots: []availability.Slot{
			{Date: "2024-12-25", Available: true, Type: availability.TypeWeekend},
			{Date: "2024-12-26", Available: false, Type: availability.TypeHoliday},
			{Date: "2024-12-27", Available: true, Type: "weekday"},
		},
		Booked: availability.BookedDates(append([]string{}, booked...)),
	}
}

func fixedID() string { return "sub-1" }
