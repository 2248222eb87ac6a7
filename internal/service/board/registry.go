package board

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Registry hands out one Board per viewer session and forgets sessions that
// stay idle longer than the TTL.
type Registry struct {
	ideas    ideaRepo
	activity activityRecorder
	log      *slog.Logger
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	board    *Board
	lastSeen time.Time
}

// NewRegistry creates an empty Registry. activity may be nil.
func NewRegistry(log *slog.Logger, ideas ideaRepo, activity activityRecorder, ttl time.Duration) *Registry {
	return &Registry{
		ideas:    ideas,
		activity: activity,
		log:      log,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the Board of sessionID, creating it on first use, and marks
// the session as active.
func (r *Registry) Get(sessionID string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{board: New(r.log.With("session_id", sessionID), r.ideas, r.activity)}
		r.sessions[sessionID] = s
	}
	s.lastSeen = r.now()
	return s.board
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	n := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.DebugContext(ctx, "idle board sessions dropped",
					slog.Int("dropped", n),
					slog.Int("remaining", r.Len()),
				)
			}
		}
	}
}
