package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sagethink/sage/internal/journal"
	"github.com/sagethink/sage/internal/sequence"
	"github.com/sagethink/sage/internal/thought"
)

// SequentialThinkingTool handles the sequential_thinking MCP tool:
// the stateful, multi-turn thought-sequence tracker.
type SequentialThinkingTool struct {
	tracker *sequence.Tracker
	journal *journal.Journal // nil when the journal subsystem is disabled
	tools   []string         // registered tool names, fed to the engine
}

// NewSequentialThinkingTool creates a SequentialThinkingTool.
// availableTools is the registry's tool-name list; jrnl may be nil.
func NewSequentialThinkingTool(tracker *sequence.Tracker, jrnl *journal.Journal, availableTools []string) *SequentialThinkingTool {
	return &SequentialThinkingTool{tracker: tracker, journal: jrnl, tools: availableTools}
}

// Definition returns the MCP tool definition for sequential_thinking.
func (t *SequentialThinkingTool) Definition() mcp.Tool {
	return mcp.NewTool("sequential_thinking",
		mcp.WithDescription(
			"Process one thought in a numbered, branchable, revisable reasoning sequence. "+
				"Tracks the sequence stage, recommends which reasoning tool to apply next, "+
				"and keeps per-session history. Supply the same session_id across calls for continuity.",
		),
		mcp.WithString("thought",
			mcp.Required(),
			mcp.Description("The current reasoning step as free text"),
		),
		mcp.WithNumber("thought_number",
			mcp.Required(),
			mcp.Description("1-based position of this thought in the sequence"),
		),
		mcp.WithNumber("total_thoughts",
			mcp.Required(),
			mcp.Description("Current estimate of the total sequence length"),
		),
		mcp.WithBoolean("next_thought_needed",
			mcp.Required(),
			mcp.Description("Whether another thought should follow this one"),
		),
		mcp.WithBoolean("is_revision",
			mcp.Description("Whether this thought revises an earlier one"),
		),
		mcp.WithNumber("revises_thought",
			mcp.Description("Thought number being revised"),
		),
		mcp.WithNumber("branch_from_thought",
			mcp.Description("Thought number this branch diverges from"),
		),
		mcp.WithString("branch_id",
			mcp.Description("Name of the branch this thought belongs to"),
		),
		mcp.WithBoolean("needs_more_thoughts",
			mcp.Description("Signal that the sequence needs to grow beyond total_thoughts"),
		),
		mcp.WithString("session_id",
			mcp.Description("Opaque session identifier; generated when omitted"),
		),
		mcp.WithString("domain_hint",
			mcp.Description("Optional domain override for tool recommendation (technical, strategic, research, creative, general)"),
		),
	)
}

// Handle processes the sequential_thinking tool call.
func (t *SequentialThinkingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("thought", "")
	if text == "" {
		return mcp.NewToolResultError("'thought' is required"), nil
	}

	index := intArg(req, "thought_number", 0)
	total := intArg(req, "total_thoughts", 0)
	if index < 1 {
		return mcp.NewToolResultError("'thought_number' must be ≥ 1"), nil
	}
	if total < 1 {
		return mcp.NewToolResultError("'total_thoughts' must be ≥ 1"), nil
	}

	sessionID := req.GetString("session_id", "")
	generated := false
	if sessionID == "" {
		sessionID = uuid.NewString()
		generated = true
	}

	rec := thought.Record{
		Text:               text,
		Index:              index,
		TotalCount:         total,
		ContinuationNeeded: boolArg(req, "next_thought_needed", false),
		IsRevision:         boolArg(req, "is_revision", false),
		RevisesIndex:       intArg(req, "revises_thought", 0),
		BranchFromIndex:    intArg(req, "branch_from_thought", 0),
		BranchID:           req.GetString("branch_id", ""),
		NeedsMore:          boolArg(req, "needs_more_thoughts", false),
	}

	tctx := thought.Context{
		AvailableTools: t.tools,
		DomainHint:     req.GetString("domain_hint", ""),
	}

	result := t.tracker.Process(sessionID, rec, tctx)

	t.archive(sessionID, rec, result)

	payload := struct {
		sequence.Result
		SessionID          string `json:"session_id,omitempty"`
		SessionIDGenerated bool   `json:"session_id_generated,omitempty"`
	}{Result: result, SessionID: sessionID, SessionIDGenerated: generated}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// archive writes the processed thought to the durable journal.
// Best-effort: journal failures are logged, never surfaced.
func (t *SequentialThinkingTool) archive(sessionID string, rec thought.Record, res sequence.Result) {
	if t.journal == nil {
		return
	}
	_, err := t.journal.Append(journal.Entry{
		SessionID:       sessionID,
		BranchID:        rec.BranchID,
		Index:           rec.Index,
		TotalCount:      rec.TotalCount,
		Stage:           string(res.Stage),
		Text:            rec.Text,
		IsRevision:      rec.IsRevision,
		RevisesIndex:    rec.RevisesIndex,
		BranchFromIndex: rec.BranchFromIndex,
	})
	if err != nil {
		log.Printf("WARNING: thought journal append: %v", err)
	}
}
