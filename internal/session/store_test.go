package session

import (
	"testing"
	"time"
)

// newTestStore returns a store with no background sweeper and a
// controllable clock. The clock starts at a fixed instant; advance
// moves it forward.
func newTestStore(t *testing.T, timeout time.Duration) (*Store, func(time.Duration)) {
	t.Helper()

	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return current }
	t.Cleanup(func() { timeNow = time.Now })

	s := New(Config{Timeout: timeout}) // SweepInterval 0: no goroutine
	t.Cleanup(s.Close)

	return s, func(d time.Duration) { current = current.Add(d) }
}

func rec(index, total int) Record {
	return Record{Text: "t", Index: index, TotalCount: total, ContinuationNeeded: index < total}
}

// --- Lifecycle ---

func TestGet_AbsentSessionIsNil(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	if got := s.Get("nope"); got != nil {
		t.Errorf("Get(absent) = %+v, want nil", got)
	}
}

func TestAddThought_CreatesSessionTransparently(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.AddThought("a", rec(1, 3))

	sess := s.Get("a")
	if sess == nil {
		t.Fatal("session not created by AddThought")
	}
	if len(sess.ThoughtHistory) != 1 {
		t.Errorf("history length = %d, want 1", len(sess.ThoughtHistory))
	}
}

func TestAddBranch_CreatesSessionAndBranch(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.AddBranch("a", "alt", rec(2, 4))

	branches := s.Branches("a")
	if len(branches["alt"]) != 1 {
		t.Fatalf("branch alt length = %d, want 1", len(branches["alt"]))
	}
}

func TestCreate_ExistingSessionKeepsHistory(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.AddThought("a", rec(1, 2))
	s.Create("a")

	if got := len(s.ThoughtHistory("a")); got != 1 {
		t.Errorf("history length after re-Create = %d, want 1", got)
	}
}

func TestClear_RemovesSession(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)

	s.AddThought("a", rec(1, 2))
	s.Clear("a")

	if s.Get("a") != nil {
		t.Error("session survived Clear")
	}
	s.Clear("a") // clearing an absent session is not an error
}

// --- Defensive copies ---

func TestThoughtHistory_ReturnsIndependentCopy(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	s.AddThought("a", rec(1, 2))
	s.AddThought("a", rec(2, 2))

	first := s.ThoughtHistory("a")
	second := s.ThoughtHistory("a")

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("history lengths = %d, %d, want 2, 2", len(first), len(second))
	}
	first[0].Text = "mutated"
	if second[0].Text == "mutated" {
		t.Error("histories share backing storage")
	}
	if s.ThoughtHistory("a")[0].Text == "mutated" {
		t.Error("caller mutation reached the store")
	}
}

func TestGet_SnapshotDoesNotAliasStore(t *testing.T) {
	s, _ := newTestStore(t, time.Hour)
	s.AddBranch("a", "alt", rec(2, 4))

	snap := s.Get("a")
	snap.Branches["alt"][0].Text = "mutated"
	snap.Branches["other"] = []Record{rec(1, 1)}

	if s.Branches("a")["alt"][0].Text == "mutated" {
		t.Error("snapshot aliases stored branch records")
	}
	if _, ok := s.Branches("a")["other"]; ok {
		t.Error("snapshot map writes reached the store")
	}
}

// --- Eviction ---

func TestCleanupExpired_EvictsIdleSession(t *testing.T) {
	s, advance := newTestStore(t, time.Hour)

	s.AddThought("idle", rec(1, 2))
	advance(time.Hour + time.Minute)

	if n := s.CleanupExpired(); n != 1 {
		t.Errorf("evicted %d sessions, want 1", n)
	}
	if s.Get("idle") != nil {
		t.Error("idle session survived cleanup")
	}
}

func TestCleanupExpired_TouchedSessionSurvives(t *testing.T) {
	s, advance := newTestStore(t, time.Hour)

	s.AddThought("busy", rec(1, 2))
	advance(59 * time.Minute)
	s.Get("busy") // read refreshes last access
	advance(59 * time.Minute)

	if n := s.CleanupExpired(); n != 0 {
		t.Errorf("evicted %d sessions, want 0", n)
	}
	if s.Get("busy") == nil {
		t.Error("touched session was evicted")
	}
}

func TestCleanupExpired_ExactTimeoutIsNotExpired(t *testing.T) {
	s, advance := newTestStore(t, time.Hour)

	s.AddThought("edge", rec(1, 2))
	advance(time.Hour) // strictly greater than timeout is required

	if n := s.CleanupExpired(); n != 0 {
		t.Errorf("evicted %d sessions at exact timeout, want 0", n)
	}
}

func TestCleanupExpired_Idempotent(t *testing.T) {
	s, advance := newTestStore(t, time.Hour)

	s.AddThought("a", rec(1, 2))
	advance(2 * time.Hour)

	s.CleanupExpired()
	if n := s.CleanupExpired(); n != 0 {
		t.Errorf("second cleanup evicted %d, want 0", n)
	}
}

func TestClose_StopsAndClears(t *testing.T) {
	timeNow = time.Now
	s := New(Config{Timeout: time.Hour, SweepInterval: time.Millisecond})
	s.AddThought("a", rec(1, 2))

	s.Close()
	s.Close() // second close must not panic

	if s.Len() != 0 {
		t.Errorf("Len after Close = %d, want 0", s.Len())
	}
}
