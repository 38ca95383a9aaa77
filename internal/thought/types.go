// Package thought defines the shared contract types for the reasoning
// pipeline: the thought record, tool recommendations, the step plan,
// and the caller-supplied tool context.
//
// The stage rule also lives here (stage.go) so the recommendation
// engine and the sequence tracker compute it through the same function.
package thought

// Record is one unit in a numbered, possibly branching or revising
// sequence of reasoning steps. Created once per tool invocation and
// immutable within that invocation.
type Record struct {
	Text               string           `json:"thought"`
	Index              int              `json:"thought_number"`
	TotalCount         int              `json:"total_thoughts"`
	ContinuationNeeded bool             `json:"next_thought_needed"`
	IsRevision         bool             `json:"is_revision,omitempty"`
	RevisesIndex       int              `json:"revises_thought,omitempty"`
	BranchFromIndex    int              `json:"branch_from_thought,omitempty"`
	BranchID           string           `json:"branch_id,omitempty"`
	NeedsMore          bool             `json:"needs_more_thoughts,omitempty"`
	CurrentStep        *CurrentStepPlan `json:"current_step,omitempty"`
}

// Recommendation is a scored suggestion of which reasoning tool to
// apply next. Confidence is always within [0, 1].
type Recommendation struct {
	ToolName     string   `json:"tool_name"`
	Confidence   float64  `json:"confidence"`
	Rationale    string   `json:"rationale"`
	Priority     int      `json:"priority"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// CurrentStepPlan describes the synthesized plan for the current
// reasoning step. Always derived, never hand-authored by the engine's
// callers (though a caller may pass through a plan of its own on the
// incoming Record, in which case the tracker keeps it).
type CurrentStepPlan struct {
	Description        string           `json:"step_description"`
	Recommendations    []Recommendation `json:"recommended_tools"`
	ExpectedOutcome    string           `json:"expected_outcome"`
	NextStepConditions []string         `json:"next_step_conditions"`
	StepIndex          int              `json:"step_number,omitempty"`
	Complexity         string           `json:"complexity,omitempty"`
	EstimatedDuration  string           `json:"estimated_duration,omitempty"`
}

// Context carries caller-supplied information the engine reads but
// never mutates.
type Context struct {
	AvailableTools          []string          `json:"available_tools"`
	Preferences             map[string]string `json:"preferences,omitempty"`
	SessionHistorySummaries []string          `json:"session_history,omitempty"`
	DomainHint              string            `json:"domain_hint,omitempty"`
}

// HasTool reports whether name is among the caller-supplied available
// tools.
func (c Context) HasTool(name string) bool {
	for _, t := range c.AvailableTools {
		if t == name {
			return true
		}
	}
	return false
}
