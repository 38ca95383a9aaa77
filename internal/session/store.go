// Package session implements the process-lifetime session store:
// per-session thought history and named branches with idle-timeout
// eviction.
//
// The store is explicitly constructed and passed by handle — there is
// no package-level singleton. A coarse per-store mutex protects the
// session map and every session's history and branch lists; the
// background sweeper takes the same lock, so a sweep never interleaves
// with a request-driven mutation of the same session.
package session

import (
	"sync"
	"time"
)

// timeNow is a package-level var to allow test injection.
var timeNow = time.Now

// Session holds one caller's thought history and branches. Instances
// are owned exclusively by the store; accessors return copies.
type Session struct {
	ID             string
	ThoughtHistory []Record
	Branches       map[string][]Record
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// Record is the stored form of one processed thought. The session
// store keeps its own flat copy of the fields it needs, decoupled from
// the tracker's response shape.
type Record struct {
	Text               string `json:"thought"`
	Index              int    `json:"thought_number"`
	TotalCount         int    `json:"total_thoughts"`
	ContinuationNeeded bool   `json:"next_thought_needed"`
	IsRevision         bool   `json:"is_revision,omitempty"`
	RevisesIndex       int    `json:"revises_thought,omitempty"`
	BranchFromIndex    int    `json:"branch_from_thought,omitempty"`
	BranchID           string `json:"branch_id,omitempty"`
	NeedsMore          bool   `json:"needs_more_thoughts,omitempty"`
}

// Config holds store configuration.
type Config struct {
	// Timeout is the idle duration after which a session expires.
	Timeout time.Duration
	// SweepInterval is how often the background sweeper runs.
	// Zero disables the background sweeper; CleanupExpired can still
	// be called on demand.
	SweepInterval time.Duration
}

// DefaultConfig returns the standard eviction policy: one hour idle
// timeout, swept every fifteen minutes.
func DefaultConfig() Config {
	return Config{
		Timeout:       time.Hour,
		SweepInterval: 15 * time.Minute,
	}
}

// Store keeps sessions keyed by an opaque caller-supplied identifier.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config

	done    chan struct{}
	closeMu sync.Once
}

// New creates a Store and, when the config enables it, starts the
// background eviction sweeper. Close must be called on shutdown.
func New(cfg Config) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		done:     make(chan struct{}),
	}
	if cfg.SweepInterval > 0 {
		go s.sweep()
	}
	return s
}

// sweep runs CleanupExpired on the configured interval until Close.
func (s *Store) sweep() {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.CleanupExpired()
		case <-s.done:
			return
		}
	}
}

// Close stops the background sweeper and clears all sessions. Safe to
// call more than once.
func (s *Store) Close() {
	s.closeMu.Do(func() { close(s.done) })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*Session)
}

// Create registers an empty session under id. Creating an existing
// session is a no-op (the existing history is kept).
func (s *Store) Create(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getOrCreateLocked(id)
}

// Get returns a copy of the session, or nil if absent. Reading a
// session refreshes its last-access time, postponing eviction.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.LastAccessedAt = timeNow()
	return snapshot(sess)
}

// Clear removes the session entirely. Clearing an absent session is
// not an error.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// AddThought appends a record to the session's main history, creating
// the session if absent.
func (s *Store) AddThought(id string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	sess.ThoughtHistory = append(sess.ThoughtHistory, rec)
	sess.LastAccessedAt = timeNow()
}

// AddBranch appends a record to the named branch, creating the session
// and the branch list as needed.
func (s *Store) AddBranch(id, branchID string, rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getOrCreateLocked(id)
	if sess.Branches == nil {
		sess.Branches = make(map[string][]Record)
	}
	sess.Branches[branchID] = append(sess.Branches[branchID], rec)
	sess.LastAccessedAt = timeNow()
}

// ThoughtHistory returns a defensive copy of the session's main
// history. An absent session yields an empty slice.
func (s *Store) ThoughtHistory(id string) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	sess.LastAccessedAt = timeNow()
	return append([]Record(nil), sess.ThoughtHistory...)
}

// Branches returns a defensive copy of the session's branch map. An
// absent session yields an empty map.
func (s *Store) Branches(id string) map[string][]Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return map[string][]Record{}
	}
	sess.LastAccessedAt = timeNow()

	out := make(map[string][]Record, len(sess.Branches))
	for name, recs := range sess.Branches {
		out[name] = append([]Record(nil), recs...)
	}
	return out
}

// CleanupExpired evicts every session idle longer than the configured
// timeout. Idempotent: running it with nothing expired is a no-op. It
// returns the number of sessions evicted.
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := timeNow()
	evicted := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.LastAccessedAt) > s.cfg.Timeout {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// getOrCreateLocked returns the session for id, creating it when
// absent. Caller must hold s.mu.
func (s *Store) getOrCreateLocked(id string) *Session {
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	now := timeNow()
	sess := &Session{
		ID:             id,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	s.sessions[id] = sess
	return sess
}

// snapshot deep-copies a session so callers never alias store-owned
// slices or maps.
func snapshot(sess *Session) *Session {
	out := &Session{
		ID:             sess.ID,
		ThoughtHistory: append([]Record(nil), sess.ThoughtHistory...),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
	}
	if sess.Branches != nil {
		out.Branches = make(map[string][]Record, len(sess.Branches))
		for name, recs := range sess.Branches {
			out.Branches[name] = append([]Record(nil), recs...)
		}
	}
	return out
}
