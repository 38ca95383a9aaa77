// Package sequence implements the thought-sequence tracker: it turns
// one incoming thought record into the response record handed to the
// transport layer, enriched with a recommendation-engine step plan and
// persisted into the session store.
package sequence

import (
	"time"

	"github.com/sagethink/sage/internal/recommend"
	"github.com/sagethink/sage/internal/session"
	"github.com/sagethink/sage/internal/thought"
)

// timeNow is a package-level var to allow test injection.
var timeNow = time.Now

// Guidance strings reported in the result, chosen by the completion
// precedence: needs-more overrides continuation, which overrides done.
const (
	GuidanceMoreThoughts = "more thoughts needed"
	GuidanceNextThought  = "next thought needed"
	GuidanceComplete     = "sequence complete"
)

// Result is the plain data record returned for one processed thought.
// It is handed as-is to the formatting and protocol layers.
type Result struct {
	Text               string                   `json:"thought"`
	Index              int                      `json:"thought_number"`
	TotalCount         int                      `json:"total_thoughts"`
	ContinuationNeeded bool                     `json:"next_thought_needed"`
	Stage              thought.Stage            `json:"stage"`
	IsRevision         bool                     `json:"is_revision,omitempty"`
	RevisesIndex       int                      `json:"revises_thought,omitempty"`
	BranchID           string                   `json:"branch_id,omitempty"`
	CurrentStep        *thought.CurrentStepPlan `json:"current_step,omitempty"`
	Guidance           string                   `json:"guidance"`
	Status             string                   `json:"status"`
	Timestamp          string                   `json:"timestamp"`
}

// Tracker composes thought results. The session store is optional:
// with a nil store the tracker still produces full results, it just
// keeps no history.
type Tracker struct {
	engine   *recommend.Engine
	sessions *session.Store
}

// New creates a Tracker.
func New(engine *recommend.Engine, sessions *session.Store) *Tracker {
	return &Tracker{engine: engine, sessions: sessions}
}

// Process handles one thought: computes the stage, attaches a step
// plan when the caller did not supply one, persists the record under
// sessionID (main history, plus the named branch when branching), and
// assembles the result.
//
// Referenced indices (revises_thought, branch_from_thought) are echoed
// without validation against the current index or existing history —
// permissive by contract.
func (t *Tracker) Process(sessionID string, rec thought.Record, ctx thought.Context) Result {
	stage := thought.StageFor(rec.Index, rec.TotalCount)

	step := rec.CurrentStep
	if step == nil {
		plan := t.engine.PlanStep(rec.Text, rec.Index, rec.TotalCount, ctx)
		step = &plan
	}

	if t.sessions != nil && sessionID != "" {
		stored := storedRecord(rec)
		t.sessions.AddThought(sessionID, stored)
		if rec.BranchID != "" {
			t.sessions.AddBranch(sessionID, rec.BranchID, stored)
		}
	}

	return Result{
		Text:               rec.Text,
		Index:              rec.Index,
		TotalCount:         rec.TotalCount,
		ContinuationNeeded: rec.ContinuationNeeded,
		Stage:              stage,
		IsRevision:         rec.IsRevision,
		RevisesIndex:       rec.RevisesIndex,
		BranchID:           rec.BranchID,
		CurrentStep:        step,
		Guidance:           guidance(rec),
		Status:             "success",
		Timestamp:          timeNow().UTC().Format(time.RFC3339),
	}
}

// guidance applies the completion precedence.
func guidance(rec thought.Record) string {
	switch {
	case rec.NeedsMore:
		return GuidanceMoreThoughts
	case rec.ContinuationNeeded:
		return GuidanceNextThought
	default:
		return GuidanceComplete
	}
}

// storedRecord flattens the incoming record into the session store's
// shape, dropping the step plan (plans are derived, not history).
func storedRecord(rec thought.Record) session.Record {
	return session.Record{
		Text:               rec.Text,
		Index:              rec.Index,
		TotalCount:         rec.TotalCount,
		ContinuationNeeded: rec.ContinuationNeeded,
		IsRevision:         rec.IsRevision,
		RevisesIndex:       rec.RevisesIndex,
		BranchFromIndex:    rec.BranchFromIndex,
		BranchID:           rec.BranchID,
		NeedsMore:          rec.NeedsMore,
	}
}
