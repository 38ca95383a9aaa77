package sequence

import (
	"testing"
	"time"

	"github.com/sagethink/sage/internal/recommend"
	"github.com/sagethink/sage/internal/session"
	"github.com/sagethink/sage/internal/thought"
)

func init() {
	// Freeze time for deterministic timestamps.
	timeNow = func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}
}

func testTracker(t *testing.T) (*Tracker, *session.Store) {
	t.Helper()
	store := session.New(session.Config{Timeout: time.Hour})
	t.Cleanup(store.Close)
	return New(recommend.New(), store), store
}

func testContext() thought.Context {
	return thought.Context{AvailableTools: []string{
		"mental_model", "debugging_approach", "decision_framework",
	}}
}

// --- Result assembly ---

func TestProcess_EchoesSequenceMetadata(t *testing.T) {
	tr, _ := testTracker(t)

	rec := thought.Record{Text: "I have a problem with the system", Index: 1, TotalCount: 3, ContinuationNeeded: true}
	res := tr.Process("s1", rec, testContext())

	if res.Status != "success" {
		t.Errorf("Status = %s, want success", res.Status)
	}
	if res.Stage != thought.StageInitial {
		t.Errorf("Stage = %s, want initial", res.Stage)
	}
	if res.Index != 1 || res.TotalCount != 3 {
		t.Errorf("echoed position = %d/%d, want 1/3", res.Index, res.TotalCount)
	}
	if res.Timestamp != "2026-08-01T12:00:00Z" {
		t.Errorf("Timestamp = %s", res.Timestamp)
	}
}

func TestProcess_AttachesPlanWhenMissing(t *testing.T) {
	tr, _ := testTracker(t)

	res := tr.Process("s1", thought.Record{Text: "x", Index: 1, TotalCount: 3}, testContext())
	if res.CurrentStep == nil {
		t.Fatal("CurrentStep not attached")
	}
	if res.CurrentStep.StepIndex != 1 {
		t.Errorf("StepIndex = %d, want 1", res.CurrentStep.StepIndex)
	}
}

func TestProcess_KeepsCallerSuppliedPlan(t *testing.T) {
	tr, _ := testTracker(t)

	supplied := &thought.CurrentStepPlan{Description: "caller plan"}
	rec := thought.Record{Text: "x", Index: 2, TotalCount: 3, CurrentStep: supplied}
	res := tr.Process("s1", rec, testContext())

	if res.CurrentStep != supplied {
		t.Error("caller-supplied plan was replaced")
	}
}

// --- Completion precedence ---

func TestProcess_GuidancePrecedence(t *testing.T) {
	tr, _ := testTracker(t)
	ctx := testContext()

	res := tr.Process("s1", thought.Record{Text: "x", Index: 3, TotalCount: 3, ContinuationNeeded: true, NeedsMore: true}, ctx)
	if res.Guidance != GuidanceMoreThoughts {
		t.Errorf("needs_more set: guidance = %q, want %q", res.Guidance, GuidanceMoreThoughts)
	}

	res = tr.Process("s1", thought.Record{Text: "x", Index: 1, TotalCount: 3, ContinuationNeeded: true}, ctx)
	if res.Guidance != GuidanceNextThought {
		t.Errorf("continuation set: guidance = %q, want %q", res.Guidance, GuidanceNextThought)
	}

	res = tr.Process("s1", thought.Record{Text: "x", Index: 3, TotalCount: 3}, ctx)
	if res.Guidance != GuidanceComplete {
		t.Errorf("nothing set: guidance = %q, want %q", res.Guidance, GuidanceComplete)
	}
}

// --- Persistence ---

func TestProcess_PersistsHistoryAndBranches(t *testing.T) {
	tr, store := testTracker(t)
	ctx := testContext()

	tr.Process("s1", thought.Record{Text: "main", Index: 1, TotalCount: 3, ContinuationNeeded: true}, ctx)
	tr.Process("s1", thought.Record{Text: "alt", Index: 2, TotalCount: 3, BranchFromIndex: 1, BranchID: "alt-1"}, ctx)

	history := store.ThoughtHistory("s1")
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}

	branches := store.Branches("s1")
	if len(branches["alt-1"]) != 1 {
		t.Fatalf("branch alt-1 length = %d, want 1", len(branches["alt-1"]))
	}
	if branches["alt-1"][0].BranchFromIndex != 1 {
		t.Errorf("BranchFromIndex = %d, want 1", branches["alt-1"][0].BranchFromIndex)
	}
}

func TestProcess_EmptySessionIDSkipsPersistence(t *testing.T) {
	tr, store := testTracker(t)

	tr.Process("", thought.Record{Text: "x", Index: 1, TotalCount: 2}, testContext())
	if store.Len() != 0 {
		t.Errorf("store has %d sessions, want 0", store.Len())
	}
}

func TestProcess_NilStoreStillProducesResult(t *testing.T) {
	tr := New(recommend.New(), nil)

	res := tr.Process("s1", thought.Record{Text: "x", Index: 1, TotalCount: 1}, testContext())
	if res.Status != "success" || res.Stage != thought.StageFinal {
		t.Errorf("result = %+v", res)
	}
}

// --- Permissive revision metadata ---

func TestProcess_EchoesOutOfRangeRevisionIndex(t *testing.T) {
	tr, _ := testTracker(t)

	// revises_thought ≥ index is not rejected; the tracker echoes it.
	rec := thought.Record{Text: "x", Index: 2, TotalCount: 3, IsRevision: true, RevisesIndex: 7}
	res := tr.Process("s1", rec, testContext())

	if !res.IsRevision || res.RevisesIndex != 7 {
		t.Errorf("revision metadata = (%v, %d), want (true, 7)", res.IsRevision, res.RevisesIndex)
	}
}
