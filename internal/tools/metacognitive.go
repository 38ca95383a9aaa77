package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// MetacognitiveMonitoringTool handles the metacognitive_monitoring
// MCP tool: a checkpoint on the quality of ongoing reasoning.
type MetacognitiveMonitoringTool struct{}

// NewMetacognitiveMonitoringTool creates a MetacognitiveMonitoringTool.
func NewMetacognitiveMonitoringTool() *MetacognitiveMonitoringTool {
	return &MetacognitiveMonitoringTool{}
}

// Definition returns the MCP tool definition for metacognitive_monitoring.
func (t *MetacognitiveMonitoringTool) Definition() mcp.Tool {
	return mcp.NewTool("metacognitive_monitoring",
		mcp.WithDescription(
			"Audit the current reasoning: knowledge boundaries, claim confidence, "+
				"and likely biases. Use mid-sequence before committing further effort.",
		),
		mcp.WithString("task",
			mcp.Required(),
			mcp.Description("The reasoning task being monitored"),
		),
		mcp.WithString("current_claim",
			mcp.Description("The main claim or conclusion held so far"),
		),
	)
}

// Handle processes the metacognitive_monitoring tool call.
func (t *MetacognitiveMonitoringTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	task := strings.TrimSpace(req.GetString("task", ""))
	if task == "" {
		return mcp.NewToolResultError("'task' is required"), nil
	}

	var sb strings.Builder
	sb.WriteString("## Metacognitive Checkpoint\n\n")
	sb.WriteString(fmt.Sprintf("**Task:** %s\n\n", task))
	if claim := strings.TrimSpace(req.GetString("current_claim", "")); claim != "" {
		sb.WriteString(fmt.Sprintf("**Claim under audit:** %s\n\n", claim))
	}
	sb.WriteString("### Audit Questions\n\n")
	sb.WriteString("1. Which parts of this rest on verified knowledge, and which on assumption?\n")
	sb.WriteString("2. What confidence does the main claim deserve, and what evidence would change it?\n")
	sb.WriteString("3. What is the most likely bias in how the problem has been framed so far?\n")
	sb.WriteString("4. What is deliberately being ignored, and is that still safe?\n")

	return mcp.NewToolResultText(sb.String()), nil
}
