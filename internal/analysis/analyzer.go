// Package analysis implements the content analyzer: a pure function
// mapping free-text thought content to keywords, an intent class, a
// complexity score, and an inferred domain.
//
// Everything here is a deterministic rule table. It is intentionally a
// crude heuristic, not a learned model — there is no calibration
// against ground truth and no error path: every input, including the
// empty string, yields a result.
package analysis

import "strings"

// Intent is the classified purpose of a thought.
type Intent string

const (
	IntentProblemIdentification Intent = "problem_identification"
	IntentAnalysis              Intent = "analysis"
	IntentDecisionMaking        Intent = "decision_making"
	IntentPlanning              Intent = "planning"
	IntentEvaluation            Intent = "evaluation"
	IntentExploration           Intent = "exploration"
)

// Domain is the inferred subject area of a thought.
type Domain string

const (
	DomainTechnical Domain = "technical"
	DomainStrategic Domain = "strategic"
	DomainResearch  Domain = "research"
	DomainCreative  Domain = "creative"
	DomainGeneral   Domain = "general"
)

// Result holds the analyzer output for one thought.
type Result struct {
	Keywords   []string
	Intent     Intent
	Complexity float64
	Domain     Domain
}

// keywordGroups maps each intent class to its trigger keywords.
// Each keyword appears exactly once across all groups, so the matched
// set can never contain duplicates.
var keywordGroups = []struct {
	intent   Intent
	keywords []string
}{
	{IntentProblemIdentification, []string{"problem", "issue", "error", "bug", "broken", "failure", "wrong"}},
	{IntentAnalysis, []string{"analyze", "examine", "investigate", "understand", "study", "inspect"}},
	{IntentDecisionMaking, []string{"decide", "choose", "select", "option", "alternative", "tradeoff"}},
	{IntentPlanning, []string{"plan", "design", "implement", "build", "create", "organize"}},
	{IntentEvaluation, []string{"evaluate", "assess", "test", "verify", "measure", "review"}},
}

// technicalTerms bump the complexity score when present in the text.
var technicalTerms = []string{
	"algorithm", "database", "architecture", "concurrency", "protocol",
	"api", "latency", "infrastructure", "compiler", "distributed",
}

// domainIndicators are checked against the matched keyword set, in
// order. The first list with a hit wins; no hit means general.
var domainIndicators = []struct {
	domain     Domain
	indicators []string
}{
	{DomainTechnical, []string{"error", "bug", "broken", "implement", "build", "test"}},
	{DomainStrategic, []string{"decide", "choose", "plan", "tradeoff", "organize"}},
	{DomainResearch, []string{"investigate", "examine", "analyze", "study", "understand"}},
}

// Analyze classifies one thought. It never fails: empty text yields
// intent exploration, complexity 0.5, domain general.
func Analyze(text string) Result {
	lower := strings.ToLower(text)

	keywords := matchKeywords(lower)

	return Result{
		Keywords:   keywords,
		Intent:     classifyIntent(keywords),
		Complexity: scoreComplexity(lower, len(keywords)),
		Domain:     inferDomain(keywords),
	}
}

// matchKeywords returns every table keyword that occurs in the
// lowercased text, in table order.
func matchKeywords(lower string) []string {
	var matched []string
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, kw)
			}
		}
	}
	return matched
}

// classifyIntent picks the first keyword group, in priority order,
// with at least one match. This is a priority list, not a vote.
func classifyIntent(keywords []string) Intent {
	matched := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		matched[kw] = true
	}

	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if matched[kw] {
				return group.intent
			}
		}
	}
	return IntentExploration
}

// scoreComplexity computes the linear complexity heuristic:
// base 0.5, +0.2 past 200 chars, +0.2 more past 500 chars,
// +0.1 per keyword capped at +0.3, +0.2 if a technical term appears,
// clamped to [0, 1].
func scoreComplexity(lower string, keywordCount int) float64 {
	score := 0.5

	if len(lower) > 200 {
		score += 0.2
	}
	if len(lower) > 500 {
		score += 0.2
	}

	kwBonus := 0.1 * float64(keywordCount)
	if kwBonus > 0.3 {
		kwBonus = 0.3
	}
	score += kwBonus

	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			score += 0.2
			break
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	return score
}

// inferDomain checks the indicator lists against the matched keyword
// set, in priority order.
func inferDomain(keywords []string) Domain {
	matched := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		matched[kw] = true
	}

	for _, entry := range domainIndicators {
		for _, ind := range entry.indicators {
			if matched[ind] {
				return entry.domain
			}
		}
	}
	return DomainGeneral
}
