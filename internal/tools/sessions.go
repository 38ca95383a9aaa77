package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sagethink/sage/internal/session"
)

// ThoughtHistoryTool handles the thought_history MCP tool.
type ThoughtHistoryTool struct {
	sessions *session.Store
}

// NewThoughtHistoryTool creates a ThoughtHistoryTool.
func NewThoughtHistoryTool(sessions *session.Store) *ThoughtHistoryTool {
	return &ThoughtHistoryTool{sessions: sessions}
}

// Definition returns the MCP tool definition for thought_history.
func (t *ThoughtHistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("thought_history",
		mcp.WithDescription(
			"Return the recorded thought history and branches of a session. "+
				"Reading a session refreshes its idle timer.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session identifier to inspect"),
		),
	)
}

// Handle processes the thought_history tool call.
func (t *ThoughtHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("session_id", "")
	if id == "" {
		return mcp.NewToolResultError("'session_id' is required"), nil
	}

	sess := t.sessions.Get(id)
	if sess == nil {
		return mcp.NewToolResultText(fmt.Sprintf("No session %q — nothing recorded yet.", id)), nil
	}

	payload := struct {
		SessionID string                      `json:"session_id"`
		Thoughts  []session.Record            `json:"thought_history"`
		Branches  map[string][]session.Record `json:"branches,omitempty"`
	}{SessionID: id, Thoughts: sess.ThoughtHistory, Branches: sess.Branches}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode history: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ─── ClearSessionTool ───────────────────────────────────────────────────────

// ClearSessionTool handles the clear_session MCP tool.
type ClearSessionTool struct {
	sessions *session.Store
}

// NewClearSessionTool creates a ClearSessionTool.
func NewClearSessionTool(sessions *session.Store) *ClearSessionTool {
	return &ClearSessionTool{sessions: sessions}
}

// Definition returns the MCP tool definition for clear_session.
func (t *ClearSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("clear_session",
		mcp.WithDescription(
			"Discard a session's in-memory thought history and branches. "+
				"The durable journal, when enabled, is unaffected.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session identifier to clear"),
		),
	)
}

// Handle processes the clear_session tool call.
func (t *ClearSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("session_id", "")
	if id == "" {
		return mcp.NewToolResultError("'session_id' is required"), nil
	}

	t.sessions.Clear(id)
	return mcp.NewToolResultText(fmt.Sprintf("Session %q cleared.", id)), nil
}
