package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// DecisionFrameworkTool handles the decision_framework MCP tool.
type DecisionFrameworkTool struct{}

// NewDecisionFrameworkTool creates a DecisionFrameworkTool.
func NewDecisionFrameworkTool() *DecisionFrameworkTool {
	return &DecisionFrameworkTool{}
}

// Definition returns the MCP tool definition for decision_framework.
func (t *DecisionFrameworkTool) Definition() mcp.Tool {
	return mcp.NewTool("decision_framework",
		mcp.WithDescription(
			"Structure a decision explicitly: statement, options, and criteria. "+
				"Returns an evaluation matrix worksheet for the stated options.",
		),
		mcp.WithString("decision_statement",
			mcp.Required(),
			mcp.Description("The decision to be made, as a single question"),
		),
		mcp.WithString("options",
			mcp.Required(),
			mcp.Description("Candidate options, comma-separated"),
		),
		mcp.WithString("criteria",
			mcp.Description("Evaluation criteria, comma-separated (default: feasibility, cost, risk)"),
		),
	)
}

// Handle processes the decision_framework tool call.
func (t *DecisionFrameworkTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	statement := strings.TrimSpace(req.GetString("decision_statement", ""))
	if statement == "" {
		return mcp.NewToolResultError("'decision_statement' is required"), nil
	}

	options := splitList(req.GetString("options", ""))
	if len(options) < 2 {
		return mcp.NewToolResultError("'options' must list at least two alternatives"), nil
	}

	criteria := splitList(req.GetString("criteria", ""))
	if len(criteria) == 0 {
		criteria = []string{"feasibility", "cost", "risk"}
	}

	var sb strings.Builder
	sb.WriteString("## Decision Framework\n\n")
	sb.WriteString(fmt.Sprintf("**Decision:** %s\n\n", statement))

	sb.WriteString("### Evaluation Matrix\n\n")
	sb.WriteString("| Option | " + strings.Join(criteria, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(criteria)+1) + "\n")
	for _, opt := range options {
		sb.WriteString("| " + opt + " |" + strings.Repeat(" |", len(criteria)) + "\n")
	}

	sb.WriteString("\n### Procedure\n\n")
	sb.WriteString("1. Score every option against every criterion\n")
	sb.WriteString("2. Note any option that fails a hard constraint outright\n")
	sb.WriteString("3. Pick the best-scoring survivor and record why the runner-up lost\n")

	return mcp.NewToolResultText(sb.String()), nil
}

// splitList splits a comma-separated parameter into trimmed non-empty
// items.
func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
