package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// CollaborativeReasoningTool handles the collaborative_reasoning MCP
// tool: reasoning about a topic through several named perspectives.
type CollaborativeReasoningTool struct{}

// NewCollaborativeReasoningTool creates a CollaborativeReasoningTool.
func NewCollaborativeReasoningTool() *CollaborativeReasoningTool {
	return &CollaborativeReasoningTool{}
}

// defaultPersonas is used when the caller names none.
var defaultPersonas = []string{"optimist", "skeptic", "pragmatist"}

// Definition returns the MCP tool definition for collaborative_reasoning.
func (t *CollaborativeReasoningTool) Definition() mcp.Tool {
	return mcp.NewTool("collaborative_reasoning",
		mcp.WithDescription(
			"Examine a topic from multiple deliberately different perspectives "+
				"(personas) and synthesize where they agree and conflict.",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic or proposal under examination"),
		),
		mcp.WithString("personas",
			mcp.Description("Perspective names, comma-separated (default: optimist, skeptic, pragmatist)"),
		),
	)
}

// Handle processes the collaborative_reasoning tool call.
func (t *CollaborativeReasoningTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := strings.TrimSpace(req.GetString("topic", ""))
	if topic == "" {
		return mcp.NewToolResultError("'topic' is required"), nil
	}

	personas := splitList(req.GetString("personas", ""))
	if len(personas) == 0 {
		personas = defaultPersonas
	}

	var sb strings.Builder
	sb.WriteString("## Collaborative Reasoning\n\n")
	sb.WriteString(fmt.Sprintf("**Topic:** %s\n\n", topic))
	sb.WriteString("### Perspectives\n\n")
	for _, p := range personas {
		sb.WriteString(fmt.Sprintf("- **%s** — strongest argument from this standpoint, and its biggest blind spot\n", p))
	}
	sb.WriteString("\n### Synthesis\n\n")
	sb.WriteString("1. State where the perspectives agree\n")
	sb.WriteString("2. State the sharpest remaining conflict\n")
	sb.WriteString("3. Propose a position that survives the strongest objection\n")

	return mcp.NewToolResultText(sb.String()), nil
}
