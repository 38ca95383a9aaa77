package journal

import (
	"database/sql"
	"errors"
	"testing"
)

// newTestJournal opens a journal in a temp dir; runs against the real
// SQLite driver.
func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := New(Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestAppendAndBySession(t *testing.T) {
	j := newTestJournal(t)

	for i := 1; i <= 3; i++ {
		if _, err := j.Append(Entry{
			SessionID:  "s1",
			Index:      i,
			TotalCount: 3,
			Stage:      "middle",
			Text:       "thought",
		}); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}
	if _, err := j.Append(Entry{SessionID: "s2", Index: 1, TotalCount: 1, Stage: "final", Text: "other"}); err != nil {
		t.Fatalf("Append s2: %v", err)
	}

	got, err := j.BySession("s1", 0)
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("BySession length = %d, want 3", len(got))
	}
	for i, e := range got {
		if e.Index != i+1 {
			t.Errorf("entry %d has thought_number %d, want %d", i, e.Index, i+1)
		}
	}
}

func TestBySession_Limit(t *testing.T) {
	j := newTestJournal(t)
	for i := 1; i <= 5; i++ {
		if _, err := j.Append(Entry{SessionID: "s", Index: i, TotalCount: 5, Stage: "middle", Text: "t"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := j.BySession("s", 2)
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limited length = %d, want 2", len(got))
	}
}

func TestRecent_NewestFirst(t *testing.T) {
	j := newTestJournal(t)
	for i := 1; i <= 3; i++ {
		if _, err := j.Append(Entry{SessionID: "s", Index: i, TotalCount: 3, Stage: "middle", Text: "t"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := j.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent length = %d, want 2", len(got))
	}
	if got[0].Index != 3 || got[1].Index != 2 {
		t.Errorf("Recent order = %d,%d, want 3,2", got[0].Index, got[1].Index)
	}
}

func TestRevisionFlagsRoundTrip(t *testing.T) {
	j := newTestJournal(t)
	if _, err := j.Append(Entry{
		SessionID: "s", Index: 2, TotalCount: 3, Stage: "middle", Text: "t",
		IsRevision: true, RevisesIndex: 1, BranchFromIndex: 1, BranchID: "alt",
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := j.BySession("s", 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("BySession: %v, len %d", err, len(got))
	}
	e := got[0]
	if !e.IsRevision || e.RevisesIndex != 1 || e.BranchFromIndex != 1 || e.BranchID != "alt" {
		t.Errorf("round trip lost revision metadata: %+v", e)
	}
}

func TestSessionCount(t *testing.T) {
	j := newTestJournal(t)
	_, _ = j.Append(Entry{SessionID: "a", Index: 1, TotalCount: 1, Stage: "final", Text: "t"})
	_, _ = j.Append(Entry{SessionID: "a", Index: 1, TotalCount: 1, Stage: "final", Text: "t"})
	_, _ = j.Append(Entry{SessionID: "b", Index: 1, TotalCount: 1, Stage: "final", Text: "t"})

	n, err := j.SessionCount()
	if err != nil {
		t.Fatalf("SessionCount: %v", err)
	}
	if n != 2 {
		t.Errorf("SessionCount = %d, want 2", n)
	}
}

func TestNew_OpenFailure(t *testing.T) {
	orig := openDB
	openDB = func(driver, dsn string) (*sql.DB, error) { return nil, errors.New("boom") }
	defer func() { openDB = orig }()

	if _, err := New(Config{DataDir: t.TempDir()}); err == nil {
		t.Fatal("New succeeded with failing openDB")
	}
}
