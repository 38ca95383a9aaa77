package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// StructuredArgumentationTool handles the structured_argumentation
// MCP tool.
type StructuredArgumentationTool struct{}

// NewStructuredArgumentationTool creates a StructuredArgumentationTool.
func NewStructuredArgumentationTool() *StructuredArgumentationTool {
	return &StructuredArgumentationTool{}
}

// Definition returns the MCP tool definition for structured_argumentation.
func (t *StructuredArgumentationTool) Definition() mcp.Tool {
	return mcp.NewTool("structured_argumentation",
		mcp.WithDescription(
			"Lay out a claim with its grounds, warrant, and strongest rebuttal. "+
				"Use when evaluating whether a conclusion actually holds.",
		),
		mcp.WithString("claim",
			mcp.Required(),
			mcp.Description("The claim being argued"),
		),
		mcp.WithString("grounds",
			mcp.Description("The evidence offered for the claim"),
		),
	)
}

// Handle processes the structured_argumentation tool call.
func (t *StructuredArgumentationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	claim := strings.TrimSpace(req.GetString("claim", ""))
	if claim == "" {
		return mcp.NewToolResultError("'claim' is required"), nil
	}

	var sb strings.Builder
	sb.WriteString("## Structured Argument\n\n")
	sb.WriteString(fmt.Sprintf("**Claim:** %s\n\n", claim))
	if grounds := strings.TrimSpace(req.GetString("grounds", "")); grounds != "" {
		sb.WriteString(fmt.Sprintf("**Grounds:** %s\n\n", grounds))
	}
	sb.WriteString("### Structure\n\n")
	sb.WriteString("1. Grounds — what evidence supports the claim?\n")
	sb.WriteString("2. Warrant — why does that evidence actually support it?\n")
	sb.WriteString("3. Qualifier — how strong is the claim (always, usually, sometimes)?\n")
	sb.WriteString("4. Rebuttal — what is the strongest counter-argument, stated fairly?\n")
	sb.WriteString("5. Verdict — does the claim survive the rebuttal, and in what form?\n")

	return mcp.NewToolResultText(sb.String()), nil
}
