// Package session keeps one Visitor per browser session: its AppState, its
// booking and contact flows and the testimonials it recommended. Visitors
// idle for longer than the configured timeout are closed and forgotten.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/exclusive-events/internal/app"
	"github.com/jsamuelsen11/exclusive-events/internal/app/state"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// Visitor is the server-side state of one browser session.
type Visitor struct {
	ID      string
	State   *state.AppState
	Booking *app.BookingFlow
	Contact *app.ContactFlow

	mu    sync.Mutex
	liked map[string]bool
}

// NewVisitor creates a visitor with fresh state and idle flows.
func NewVisitor(id string, booking, contact ports.Submitter, opts ...app.FlowOption) *Visitor {
	st := state.New()
	return &Visitor{
		ID:      id,
		State:   st,
		Booking: app.NewBookingFlow(st, booking, opts...),
		Contact: app.NewContactFlow(st, contact, opts...),
		liked:   make(map[string]bool),
	}
}

// ToggleLiked flips the recommendation of a testimonial and returns the new
// value.
func (v *Visitor) ToggleLiked(testimonialID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.liked[testimonialID] = !v.liked[testimonialID]
	return v.liked[testimonialID]
}

// Liked reports whether the visitor recommended the testimonial.
func (v *Visitor) Liked(testimonialID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.liked[testimonialID]
}

// Close stops the visitor's pending timers.
func (v *Visitor) Close() {
	v.Booking.Close()
	v.Contact.Close()
}

type entry struct {
	visitor  *Visitor
	lastSeen time.Time
}

// Store maps session ids to visitors.
type Store struct {
	idle       time.Duration
	max        int
	newVisitor func(id string) *Visitor
	now        func() time.Time
	newID      func() string
	logger     *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source used for idle expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the session id generator.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithMaxSessions caps the number of sessions held. Starting a session at the
// cap evicts the least recently seen one. n < 1 means no cap.
func WithMaxSessions(n int) Option {
	return func(s *Store) { s.max = n }
}

// WithLogger sets the store's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates an empty store. newVisitor builds the visitor of a new
// session.
func NewStore(idle time.Duration, newVisitor func(id string) *Visitor, opts ...Option) *Store {
	s := &Store{
		idle:       idle,
		newVisitor: newVisitor,
		now:        time.Now,
		newID:      uuid.NewString,
		logger:     slog.New(slog.DiscardHandler),
		entries:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the live visitor for id and marks it as seen.
func (s *Store) Get(id string) (*Visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.visitor, true
}

// GetOrCreate returns the visitor for id, or starts a new session under a
// fresh id when id is unknown or expired. created reports the latter.
func (s *Store) GetOrCreate(id string) (v *Visitor, created bool) {
	if v, ok := s.Get(id); ok {
		return v, false
	}

	v = s.newVisitor(s.newID())

	s.mu.Lock()
	evicted := s.makeRoomLocked()
	s.entries[v.ID] = &entry{visitor: v, lastSeen: s.now()}
	s.mu.Unlock()

	for _, old := range evicted {
		old.Close()
	}
	if len(evicted) > 0 {
		s.logger.Debug("sessions evicted", slog.Int("count", len(evicted)))
	}
	return v, true
}

// Transient returns a visitor that is never stored. It renders the default
// state for requests that have no session and do not need one.
func (s *Store) Transient() *Visitor {
	return s.newVisitor("")
}

// makeRoomLocked frees a slot when the store is at its cap: expired entries
// go first, then the least recently seen one.
func (s *Store) makeRoomLocked() []*Visitor {
	if s.max < 1 || len(s.entries) < s.max {
		return nil
	}

	var (
		gone     []*Visitor
		oldestID string
		oldestAt time.Time
	)
	for id, e := range s.entries {
		if s.expired(e) {
			gone = append(gone, e.visitor)
			delete(s.entries, id)
			continue
		}
		if oldestID == "" || e.lastSeen.Before(oldestAt) {
			oldestID, oldestAt = id, e.lastSeen
		}
	}
	if len(s.entries) >= s.max && oldestID != "" {
		gone = append(gone, s.entries[oldestID].visitor)
		delete(s.entries, oldestID)
	}
	return gone
}

// Len returns the number of sessions held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep closes and removes expired sessions and returns how many it removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	var gone []*Visitor
	for id, e := range s.entries {
		if s.expired(e) {
			gone = append(gone, e.visitor)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, v := range gone {
		v.Close()
	}
	if len(gone) > 0 {
		s.logger.Debug("sessions expired", slog.Int("count", len(gone)))
	}
	return len(gone)
}

// Run sweeps every interval until ctx is done, then closes every session.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Close closes and removes every session.
func (s *Store) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.visitor.Close()
	}
}

func (s *Store) expired(e *entry) bool {
	return s.now().Sub(e.lastSeen) > s.idle
}
