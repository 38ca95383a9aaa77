// Package recommend implements the heuristic tool recommendation
// engine. It consumes the content analyzer's output plus sequence
// position and a caller-supplied tool context, and produces a ranked
// recommendation list and a synthesized step plan.
//
// Engine methods are total functions: any well-formed record/context
// pair yields a result. An empty available-tools list yields an empty
// recommendation list, never an error.
package recommend

import (
	"fmt"
	"sort"

	"github.com/sagethink/sage/internal/analysis"
	"github.com/sagethink/sage/internal/thought"
)

// maxRecommendations caps the combined recommendation list.
const maxRecommendations = 5

// Engine produces tool recommendations and step plans. The zero value
// is ready to use; New exists for symmetry with the other subsystems.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Recommend returns the ranked tool recommendations for one thought at
// position (index, total), restricted to ctx.AvailableTools, sorted by
// confidence descending (ties keep insertion order) and capped at 5.
func (e *Engine) Recommend(text string, index, total int, ctx thought.Context) []thought.Recommendation {
	a := analysis.Analyze(text)
	return e.combine(a, thought.StageFor(index, total), ctx)
}

// PlanStep synthesizes the current-step plan: recommendations plus a
// per-stage description, expected outcome, complexity bucket, and an
// estimated duration band.
func (e *Engine) PlanStep(text string, index, total int, ctx thought.Context) thought.CurrentStepPlan {
	a := analysis.Analyze(text)
	stage := thought.StageFor(index, total)
	recs := e.combine(a, stage, ctx)

	phrases := stagePhrases[stage]
	bucket := complexityBucket(a.Complexity)

	return thought.CurrentStepPlan{
		Description:        phrases.description,
		Recommendations:    recs,
		ExpectedOutcome:    phrases.outcome,
		NextStepConditions: phrases.conditions,
		StepIndex:          index,
		Complexity:         bucket,
		EstimatedDuration:  estimateDuration(bucket, len(recs)),
	}
}

// combine merges stage and domain recommendations into the final
// ranked list.
func (e *Engine) combine(a analysis.Result, stage thought.Stage, ctx thought.Context) []thought.Recommendation {
	byTool := make(map[string]int) // tool name → index into combined
	var combined []thought.Recommendation

	for _, rec := range stageRecommendations(stage, a) {
		if !ctx.HasTool(rec.ToolName) {
			continue
		}
		byTool[rec.ToolName] = len(combined)
		combined = append(combined, rec)
	}

	for _, rec := range domainRecommendations(a, ctx.DomainHint) {
		if !ctx.HasTool(rec.ToolName) {
			continue
		}
		if i, ok := byTool[rec.ToolName]; ok {
			merged := (combined[i].Confidence+rec.Confidence)/2 + 0.1
			if merged > 1.0 {
				merged = 1.0
			}
			combined[i].Confidence = merged
			combined[i].Rationale += "; " + rec.Rationale
			continue
		}
		byTool[rec.ToolName] = len(combined)
		combined = append(combined, rec)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Confidence > combined[j].Confidence
	})

	if len(combined) > maxRecommendations {
		combined = combined[:maxRecommendations]
	}
	return combined
}

// domainRecommendations builds the domain-table recommendations.
// A caller-supplied domain hint overrides the inferred domain; it is
// the only way to reach the creative row, which the analyzer never
// infers on its own.
func domainRecommendations(a analysis.Result, hint string) []thought.Recommendation {
	domain := a.Domain
	if hint != "" {
		domain = analysis.Domain(hint)
	}

	tools, ok := domainTools[domain]
	if !ok {
		return nil
	}

	recs := make([]thought.Recommendation, 0, len(tools))
	for pos, tool := range tools {
		confidence := 0.6 - 0.1*float64(pos)
		if toolServesIntent(tool, a.Intent) {
			confidence += 0.2
			if confidence > 1.0 {
				confidence = 1.0
			}
		}
		recs = append(recs, thought.Recommendation{
			ToolName:   tool,
			Confidence: confidence,
			Rationale:  domainRationales[domain],
			Priority:   pos + 1,
		})
	}
	return recs
}

// complexityBucket maps the analyzer score to a coarse bucket.
func complexityBucket(score float64) string {
	switch {
	case score < 0.4:
		return "low"
	case score < 0.7:
		return "medium"
	default:
		return "high"
	}
}

// estimateDuration turns the complexity bucket and recommendation
// count into one of four duration bands. The underlying estimate is
// baseMinutes(5) × bucket multiplier × (1 + 0.3 × recommendations).
func estimateDuration(bucket string, recommendationCount int) string {
	multiplier := map[string]float64{"low": 1, "medium": 1.5, "high": 2.5}[bucket]
	minutes := 5.0 * multiplier * (1 + 0.3*float64(recommendationCount))

	switch {
	case minutes <= 10:
		return "5-10 minutes"
	case minutes <= 30:
		return "15-30 minutes"
	case minutes <= 60:
		return "30-60 minutes"
	default:
		return "1+ hours"
	}
}

// DescribeTopPick gives a one-line summary of the strongest
// recommendation, for human-facing tool output.
func DescribeTopPick(recs []thought.Recommendation) string {
	if len(recs) == 0 {
		return "No tool recommendation for this step"
	}
	top := recs[0]
	return fmt.Sprintf("%s (confidence %.2f): %s", top.ToolName, top.Confidence, top.Rationale)
}
