// Package tools implements the MCP tool handlers for Sage.
//
// Each tool follows the same pattern: a struct with dependencies
// injected via its constructor, Definition() returning the mcp.Tool
// schema, and Handle() processing the request. The reasoning
// worksheets (mental_model, debugging_approach, ...) are deliberately
// thin: they validate input and render a structured worksheet the
// caller fills in — the reasoning itself happens on the client side.
package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// MentalModelTool handles the mental_model MCP tool.
type MentalModelTool struct{}

// NewMentalModelTool creates a MentalModelTool.
func NewMentalModelTool() *MentalModelTool {
	return &MentalModelTool{}
}

// mentalModels maps each supported model to its worksheet steps.
var mentalModels = map[string]struct {
	title string
	steps []string
}{
	"first_principles": {
		title: "First Principles Thinking",
		steps: []string{
			"Strip the problem down to facts you know are true",
			"Question every assumption that is not such a fact",
			"Rebuild a solution upward from the verified facts",
		},
	},
	"opportunity_cost": {
		title: "Opportunity Cost Analysis",
		steps: []string{
			"List the alternatives this choice forecloses",
			"Estimate the value of the best foregone alternative",
			"Compare that value against the chosen path",
		},
	},
	"pareto_principle": {
		title: "Pareto Principle",
		steps: []string{
			"Identify the full set of contributing factors",
			"Find the small subset likely driving most of the effect",
			"Focus effort on that subset first",
		},
	},
	"occams_razor": {
		title: "Occam's Razor",
		steps: []string{
			"Enumerate the candidate explanations",
			"Count the assumptions each one requires",
			"Prefer the explanation with the fewest assumptions, then test it",
		},
	},
	"error_propagation": {
		title: "Error Propagation",
		steps: []string{
			"Locate where the error first enters the system",
			"Trace how it compounds through each downstream step",
			"Decide the earliest point where containment is cheapest",
		},
	},
}

// Definition returns the MCP tool definition for mental_model.
func (t *MentalModelTool) Definition() mcp.Tool {
	return mcp.NewTool("mental_model",
		mcp.WithDescription(
			"Apply a structured mental model to a problem. Returns a worksheet "+
				"for the chosen model. Models: "+strings.Join(mentalModelNames(), ", ")+".",
		),
		mcp.WithString("model_name",
			mcp.Required(),
			mcp.Description("Which mental model to apply"),
		),
		mcp.WithString("problem",
			mcp.Required(),
			mcp.Description("The problem to apply the model to"),
		),
	)
}

// Handle processes the mental_model tool call.
func (t *MentalModelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("model_name", "")
	problem := strings.TrimSpace(req.GetString("problem", ""))

	if problem == "" {
		return mcp.NewToolResultError("'problem' is required"), nil
	}
	model, ok := mentalModels[name]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"unknown model %q — available: %s", name, strings.Join(mentalModelNames(), ", "),
		)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", model.title))
	sb.WriteString(fmt.Sprintf("**Problem:** %s\n\n", problem))
	sb.WriteString("### Steps\n\n")
	for i, step := range model.steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}
	sb.WriteString("\nWork through each step against the stated problem, recording the reasoning and the conclusion it produces.\n")

	return mcp.NewToolResultText(sb.String()), nil
}

// mentalModelNames returns the supported model names, sorted.
func mentalModelNames() []string {
	names := make([]string, 0, len(mentalModels))
	for name := range mentalModels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
