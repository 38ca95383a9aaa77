package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ScientificMethodTool handles the scientific_method MCP tool.
type ScientificMethodTool struct{}

// NewScientificMethodTool creates a ScientificMethodTool.
func NewScientificMethodTool() *ScientificMethodTool {
	return &ScientificMethodTool{}
}

// Definition returns the MCP tool definition for scientific_method.
func (t *ScientificMethodTool) Definition() mcp.Tool {
	return mcp.NewTool("scientific_method",
		mcp.WithDescription(
			"Frame an inquiry as hypothesis, prediction, and test. "+
				"Use when an analysis needs to be made falsifiable.",
		),
		mcp.WithString("inquiry",
			mcp.Required(),
			mcp.Description("The question being investigated"),
		),
		mcp.WithString("hypothesis",
			mcp.Description("The current working hypothesis, if any"),
		),
	)
}

// Handle processes the scientific_method tool call.
func (t *ScientificMethodTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inquiry := strings.TrimSpace(req.GetString("inquiry", ""))
	if inquiry == "" {
		return mcp.NewToolResultError("'inquiry' is required"), nil
	}

	var sb strings.Builder
	sb.WriteString("## Scientific Method\n\n")
	sb.WriteString(fmt.Sprintf("**Inquiry:** %s\n\n", inquiry))
	if hyp := strings.TrimSpace(req.GetString("hypothesis", "")); hyp != "" {
		sb.WriteString(fmt.Sprintf("**Working hypothesis:** %s\n\n", hyp))
	}
	sb.WriteString("### Procedure\n\n")
	sb.WriteString("1. State the hypothesis so that some observation could prove it wrong\n")
	sb.WriteString("2. Derive a concrete prediction the hypothesis makes\n")
	sb.WriteString("3. Design the cheapest test that checks the prediction\n")
	sb.WriteString("4. Run the test; record the outcome before interpreting it\n")
	sb.WriteString("5. Keep, refine, or discard the hypothesis based on the outcome\n")

	return mcp.NewToolResultText(sb.String()), nil
}
