// Package session holds per-visitor report state between requests.
//
// Each session owns one uploaded record set and the current filter
// selection. Nothing survives the process: there is no persistence and no
// cross-session sharing.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pendingboard/internal/core"
)

// CookieName binds a browser to its session.
const CookieName = "pendingboard_session"

// Session is the state one visitor accumulates: the classified upload and
// the filter currently applied to it. Views (summary, detail, overview) are
// always derived fresh from Records; only the selection mutates.
type Session struct {
	ID         string
	FileName   string
	UploadedAt time.Time
	Today      time.Time // reference date the upload was classified against
	Records    []core.ClassifiedRecord
	Filter     core.Filter
}

// HasData reports whether an upload has been loaded.
func (s Session) HasData() bool {
	return !s.UploadedAt.IsZero()
}

type entry struct {
	session  Session
	lastSeen time.Time
}

// Store is an in-memory session registry with TTL eviction.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create registers a fresh, empty session and returns it.
func (st *Store) Create() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := Session{
		ID:     uuid.NewString(),
		Filter: core.NoFilter(),
	}
	st.sessions[s.ID] = &entry{session: s, lastSeen: st.now()}
	return s
}

// Get returns a copy of the session and refreshes its expiry. Unknown or
// expired IDs report false; callers then create a new session.
func (st *Store) Get(id string) (Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return Session{}, false
	}
	if st.now().Sub(e.lastSeen) > st.ttl {
		delete(st.sessions, id)
		return Session{}, false
	}
	e.lastSeen = st.now()
	return e.session, true
}

// SetRecords replaces the session's data set with a new classified upload
// and resets the filter selection to ALL/ALL.
func (st *Store) SetRecords(id, fileName string, records []core.ClassifiedRecord, today time.Time) {
	st.update(id, func(s *Session) {
		s.FileName = fileName
		s.Records = records
		s.Today = today
		s.UploadedAt = st.now()
		s.Filter = core.NoFilter()
	})
}

// SetFilter updates only the filter selection.
func (st *Store) SetFilter(id string, f core.Filter) {
	st.update(id, func(s *Session) {
		s.Filter = f
	})
}

// Clear drops the session's data so a new upload can start.
func (st *Store) Clear(id string) {
	st.update(id, func(s *Session) {
		*s = Session{ID: s.ID, Filter: core.NoFilter()}
	})
}

func (st *Store) update(id string, fn func(*Session)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return
	}
	fn(&e.session)
	e.lastSeen = st.now()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// CleanExpired evicts sessions idle longer than the TTL.
func (st *Store) CleanExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	cutoff := st.now().Add(-st.ttl)
	removed := 0
	for id, e := range st.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Run evicts expired sessions periodically until the context is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			st.CleanExpired()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
