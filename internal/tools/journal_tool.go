package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sagethink/sage/internal/journal"
)

// ThoughtJournalTool handles the thought_journal MCP tool. It reads
// the durable SQLite archive; with the journal subsystem disabled it
// reports that gracefully instead of failing.
type ThoughtJournalTool struct {
	journal *journal.Journal // may be nil
}

// NewThoughtJournalTool creates a ThoughtJournalTool.
func NewThoughtJournalTool(jrnl *journal.Journal) *ThoughtJournalTool {
	return &ThoughtJournalTool{journal: jrnl}
}

// Definition returns the MCP tool definition for thought_journal.
func (t *ThoughtJournalTool) Definition() mcp.Tool {
	return mcp.NewTool("thought_journal",
		mcp.WithDescription(
			"Read archived thoughts from the durable journal, which survives "+
				"restarts and session eviction. Filter by session_id or fetch the most recent.",
		),
		mcp.WithString("session_id",
			mcp.Description("Restrict to one session's archived thoughts"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return (default 20)"),
		),
	)
}

// Handle processes the thought_journal tool call.
func (t *ThoughtJournalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.journal == nil {
		return mcp.NewToolResultText("Thought journal is disabled — no archive available."), nil
	}

	limit := intArg(req, "limit", 20)

	var (
		entries []journal.Entry
		err     error
	)
	if sessionID := req.GetString("session_id", ""); sessionID != "" {
		entries, err = t.journal.BySession(sessionID, limit)
	} else {
		entries, err = t.journal.Recent(limit)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read journal: %v", err)), nil
	}

	if len(entries) == 0 {
		return mcp.NewToolResultText("Journal is empty for this query."), nil
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode journal entries: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
