package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// DebuggingApproachTool handles the debugging_approach MCP tool.
type DebuggingApproachTool struct{}

// NewDebuggingApproachTool creates a DebuggingApproachTool.
func NewDebuggingApproachTool() *DebuggingApproachTool {
	return &DebuggingApproachTool{}
}

// debuggingApproaches maps each approach to its worksheet steps.
var debuggingApproaches = map[string]struct {
	title string
	steps []string
}{
	"binary_search": {
		title: "Binary Search",
		steps: []string{
			"Find a known-good state and a known-bad state",
			"Test the midpoint between them",
			"Halve the interval toward the failure until it is isolated",
		},
	},
	"divide_and_conquer": {
		title: "Divide and Conquer",
		steps: []string{
			"Split the system into independently testable parts",
			"Verify each part in isolation",
			"Recombine the verified parts until the fault reappears",
		},
	},
	"cause_elimination": {
		title: "Cause Elimination",
		steps: []string{
			"List every plausible cause",
			"Design a check that rules each cause in or out",
			"Eliminate causes until one remains, then confirm it",
		},
	},
	"backtracking": {
		title: "Backtracking",
		steps: []string{
			"Start from the point where the failure is observed",
			"Step backward through the chain of events",
			"Stop at the first state that is already wrong",
		},
	},
	"reverse_engineering": {
		title: "Reverse Engineering",
		steps: []string{
			"Describe the observed behavior precisely",
			"Infer what implementation would produce that behavior",
			"Check the inference against the actual code or system",
		},
	},
}

// Definition returns the MCP tool definition for debugging_approach.
func (t *DebuggingApproachTool) Definition() mcp.Tool {
	return mcp.NewTool("debugging_approach",
		mcp.WithDescription(
			"Apply a systematic debugging approach to an issue. Approaches: "+
				strings.Join(debuggingApproachNames(), ", ")+".",
		),
		mcp.WithString("approach_name",
			mcp.Required(),
			mcp.Description("Which debugging approach to apply"),
		),
		mcp.WithString("issue",
			mcp.Required(),
			mcp.Description("The issue being debugged"),
		),
		mcp.WithString("findings",
			mcp.Description("What has been observed or ruled out so far"),
		),
	)
}

// Handle processes the debugging_approach tool call.
func (t *DebuggingApproachTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("approach_name", "")
	issue := strings.TrimSpace(req.GetString("issue", ""))

	if issue == "" {
		return mcp.NewToolResultError("'issue' is required"), nil
	}
	approach, ok := debuggingApproaches[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown approach %q — available: %s", name, strings.Join(debuggingApproachNames(), ", "),
		)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Debugging: %s\n\n", approach.title))
	sb.WriteString(fmt.Sprintf("**Issue:** %s\n\n", issue))
	if findings := strings.TrimSpace(req.GetString("findings", "")); findings != "" {
		sb.WriteString(fmt.Sprintf("**Findings so far:** %s\n\n", findings))
	}
	sb.WriteString("### Steps\n\n")
	for i, step := range approach.steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	sb.WriteString("\nExecute the steps in order and record what each one rules in or out.\n")

	return mcp.NewToolResultText(sb.String()), nil
}

func debuggingApproachNames() []string {
	names := make([]string, 0, len(debuggingApproaches))
	for name := range debuggingApproaches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
