package recommend

import (
	"github.com/sagethink/sage/internal/analysis"
	"github.com/sagethink/sage/internal/thought"
)

// Tool names known to the engine. The registry in internal/server is
// the source of truth for what actually exists; these constants only
// key the rule tables below, and anything not in the caller's
// available-tools list is filtered out before it can be recommended.
const (
	ToolSequentialThinking      = "sequential_thinking"
	ToolMentalModel             = "mental_model"
	ToolDebuggingApproach       = "debugging_approach"
	ToolDecisionFramework       = "decision_framework"
	ToolCollaborativeReasoning  = "collaborative_reasoning"
	ToolMetacognitiveMonitoring = "metacognitive_monitoring"
	ToolScientificMethod        = "scientific_method"
	ToolStructuredArgumentation = "structured_argumentation"
	ToolCreativeThinking        = "creative_thinking"
)

// stageRecommendations returns the fixed per-stage recommendations
// before availability filtering and domain merging.
func stageRecommendations(stage thought.Stage, a analysis.Result) []thought.Recommendation {
	var recs []thought.Recommendation

	switch stage {
	case thought.StageInitial:
		recs = append(recs, thought.Recommendation{
			ToolName:   ToolMentalModel,
			Confidence: 0.8,
			Rationale:  "Structure the problem space with a mental model before diving into details",
			Priority:   1,
		})
		if a.Intent == analysis.IntentProblemIdentification {
			recs = append(recs, thought.Recommendation{
				ToolName:   ToolDebuggingApproach,
				Confidence: 0.7,
				Rationale:  "The thought describes a problem; a systematic debugging approach narrows it down",
				Priority:   2,
			})
		}

	case thought.StageMiddle:
		if a.Intent == analysis.IntentAnalysis {
			recs = append(recs, thought.Recommendation{
				ToolName:   ToolScientificMethod,
				Confidence: 0.7,
				Rationale:  "Mid-sequence analysis benefits from explicit hypotheses and verification",
				Priority:   1,
			})
		}
		recs = append(recs, thought.Recommendation{
			ToolName:   ToolMetacognitiveMonitoring,
			Confidence: 0.6,
			Rationale:  "Check reasoning quality and knowledge gaps before committing further",
			Priority:   2,
		})

	case thought.StageFinal:
		recs = append(recs, thought.Recommendation{
			ToolName:   ToolDecisionFramework,
			Confidence: 0.9,
			Rationale:  "The sequence is concluding; structure the final decision explicitly",
			Priority:   1,
		})
		if a.Domain == analysis.DomainStrategic {
			recs = append(recs, thought.Recommendation{
				ToolName:   ToolCollaborativeReasoning,
				Confidence: 0.7,
				Rationale:  "Strategic conclusions hold up better with multiple perspectives applied",
				Priority:   2,
			})
		}
	}

	return recs
}

// domainTools maps each domain to its associated tools in priority
// order. Domains absent from this table yield no recommendations.
var domainTools = map[analysis.Domain][]string{
	analysis.DomainTechnical: {ToolDebuggingApproach, ToolSequentialThinking, ToolScientificMethod},
	analysis.DomainStrategic: {ToolDecisionFramework, ToolCollaborativeReasoning, ToolStructuredArgumentation},
	analysis.DomainResearch:  {ToolScientificMethod, ToolStructuredArgumentation, ToolSequentialThinking},
	analysis.DomainCreative:  {ToolCreativeThinking, ToolMentalModel},
	analysis.DomainGeneral:   {ToolSequentialThinking, ToolCreativeThinking},
}

// toolIntents associates tools with the intents they serve; a domain
// recommendation whose tool matches the current intent gets a
// confidence boost.
var toolIntents = map[string][]analysis.Intent{
	ToolMentalModel:             {analysis.IntentAnalysis, analysis.IntentDecisionMaking},
	ToolDebuggingApproach:       {analysis.IntentProblemIdentification},
	ToolDecisionFramework:       {analysis.IntentDecisionMaking},
	ToolSequentialThinking:      {analysis.IntentPlanning, analysis.IntentExploration},
	ToolScientificMethod:        {analysis.IntentAnalysis},
	ToolStructuredArgumentation: {analysis.IntentEvaluation},
	ToolCollaborativeReasoning:  {analysis.IntentExploration},
	ToolMetacognitiveMonitoring: {analysis.IntentEvaluation},
	ToolCreativeThinking:        {analysis.IntentExploration},
}

// toolServesIntent reports whether the tool is associated with the
// given intent in the toolIntents table.
func toolServesIntent(tool string, intent analysis.Intent) bool {
	for _, in := range toolIntents[tool] {
		if in == intent {
			return true
		}
	}
	return false
}

// domainRationales gives the rationale template per domain.
var domainRationales = map[analysis.Domain]string{
	analysis.DomainTechnical: "Commonly effective for technical reasoning",
	analysis.DomainStrategic: "Commonly effective for strategic reasoning",
	analysis.DomainResearch:  "Commonly effective for research reasoning",
	analysis.DomainCreative:  "Commonly effective for creative reasoning",
	analysis.DomainGeneral:   "Broadly applicable regardless of domain",
}

// stagePhrases drives planStep's human-readable synthesis.
var stagePhrases = map[thought.Stage]struct {
	description string
	outcome     string
	conditions  []string
}{
	thought.StageInitial: {
		description: "Define the problem and frame the overall approach",
		outcome:     "A clear problem statement and an initial direction",
		conditions:  []string{"Problem is stated without ambiguity", "An approach has been chosen"},
	},
	thought.StageMiddle: {
		description: "Develop the analysis and refine candidate solutions",
		outcome:     "Deeper understanding and one or more viable candidates",
		conditions:  []string{"Key unknowns have been examined", "At least one candidate solution exists"},
	},
	thought.StageFinal: {
		description: "Converge on conclusions and commit to a decision",
		outcome:     "A decision or synthesis ready to act on",
		conditions:  []string{"Conclusion follows from the preceding thoughts", "Open questions are recorded"},
	},
}
