package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// CreativeThinkingTool handles the creative_thinking MCP tool.
type CreativeThinkingTool struct{}

// NewCreativeThinkingTool creates a CreativeThinkingTool.
func NewCreativeThinkingTool() *CreativeThinkingTool {
	return &CreativeThinkingTool{}
}

// Definition returns the MCP tool definition for creative_thinking.
func (t *CreativeThinkingTool) Definition() mcp.Tool {
	return mcp.NewTool("creative_thinking",
		mcp.WithDescription(
			"Generate divergent options before converging: reframings, inversions, "+
				"and analogies around a prompt.",
		),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The idea or problem to think divergently about"),
		),
	)
}

// Handle processes the creative_thinking tool call.
func (t *CreativeThinkingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt := strings.TrimSpace(req.GetString("prompt", ""))
	if prompt == "" {
		return mcp.NewToolResultError("'prompt' is required"), nil
	}

	var sb strings.Builder
	sb.WriteString("## Creative Thinking\n\n")
	sb.WriteString(fmt.Sprintf("**Prompt:** %s\n\n", prompt))
	sb.WriteString("### Divergence\n\n")
	sb.WriteString("1. Restate the prompt three different ways; keep the most surprising restatement\n")
	sb.WriteString("2. Invert it: what would guarantee the opposite outcome?\n")
	sb.WriteString("3. Find an analogy from an unrelated field and port its mechanism\n")
	sb.WriteString("4. Remove the single biggest constraint and see what becomes possible\n")
	sb.WriteString("\n### Convergence\n\n")
	sb.WriteString("Pick the one generated option worth a real experiment and name its first step.\n")

	return mcp.NewToolResultText(sb.String()), nil
}
