// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations
// (session store, thought journal, recommendation engine, tracker) and
// injects them into the tool handlers. No business logic lives here —
// only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sagethink/sage/internal/config"
	"github.com/sagethink/sage/internal/journal"
	"github.com/sagethink/sage/internal/recommend"
	"github.com/sagethink/sage/internal/sequence"
	"github.com/sagethink/sage/internal/session"
	"github.com/sagethink/sage/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// registeredTools is the registry of reasoning-tool names. It feeds
// the recommendation engine's available-tools context, so every name
// here must correspond to a tool registered in New.
var registeredTools = []string{
	"sequential_thinking",
	"mental_model",
	"debugging_approach",
	"decision_framework",
	"collaborative_reasoning",
	"metacognitive_monitoring",
	"scientific_method",
	"structured_argumentation",
	"creative_thinking",
}

// New creates and configures the MCP server with all tools registered.
//
// The returned cleanup function stops the session store's eviction
// sweeper and closes the journal database; it must be called on
// shutdown (typically via defer). It is always non-nil and safe to
// call even if journal init failed.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	// --- Create shared dependencies ---

	sessions := session.New(session.Config{
		Timeout:       cfg.SessionTimeout,
		SweepInterval: cfg.SweepInterval,
	})

	// The journal is an independent subsystem: if it fails to
	// initialize, the tracker keeps working memory-only. We log a
	// warning and register the journal tool in its disabled state.
	var jrnl *journal.Journal
	if cfg.JournalEnabled {
		j, err := journal.New(journal.Config{DataDir: cfg.DataDir})
		if err != nil {
			log.Printf("WARNING: thought journal disabled: %v", err)
		} else {
			jrnl = j
		}
	}

	cleanup := func() {
		sessions.Close()
		if jrnl != nil {
			if err := jrnl.Close(); err != nil {
				log.Printf("WARNING: journal close: %v", err)
			}
		}
	}

	tracker := sequence.New(recommend.New(), sessions)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"sage",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register the thought-sequence tracker ---

	sequential := tools.NewSequentialThinkingTool(tracker, jrnl, registeredTools)
	s.AddTool(sequential.Definition(), sequential.Handle)

	// --- Register the reasoning worksheets ---

	mentalModel := tools.NewMentalModelTool()
	s.AddTool(mentalModel.Definition(), mentalModel.Handle)

	debugging := tools.NewDebuggingApproachTool()
	s.AddTool(debugging.Definition(), debugging.Handle)

	decision := tools.NewDecisionFrameworkTool()
	s.AddTool(decision.Definition(), decision.Handle)

	collaborative := tools.NewCollaborativeReasoningTool()
	s.AddTool(collaborative.Definition(), collaborative.Handle)

	metacognitive := tools.NewMetacognitiveMonitoringTool()
	s.AddTool(metacognitive.Definition(), metacognitive.Handle)

	scientific := tools.NewScientificMethodTool()
	s.AddTool(scientific.Definition(), scientific.Handle)

	argumentation := tools.NewStructuredArgumentationTool()
	s.AddTool(argumentation.Definition(), argumentation.Handle)

	creative := tools.NewCreativeThinkingTool()
	s.AddTool(creative.Definition(), creative.Handle)

	// --- Register session continuity tools ---

	history := tools.NewThoughtHistoryTool(sessions)
	s.AddTool(history.Definition(), history.Handle)

	clear := tools.NewClearSessionTool(sessions)
	s.AddTool(clear.Definition(), clear.Handle)

	journalTool := tools.NewThoughtJournalTool(jrnl)
	s.AddTool(journalTool.Definition(), journalTool.Handle)

	return s, cleanup, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use Sage effectively.
func serverInstructions() string {
	return `You have access to Sage, a structured reasoning MCP server.

## Core tool: sequential_thinking

Use sequential_thinking to work through any non-trivial problem as a
numbered sequence of thoughts:

1. Call it with your first thought, thought_number=1, and an honest
   total_thoughts estimate. Keep next_thought_needed=true until done.
2. Reuse the session_id from the first response on every later call —
   that is what gives you history and branches.
3. Revise earlier reasoning with is_revision=true and revises_thought.
4. Explore alternatives with branch_id and branch_from_thought; the
   branch is recorded alongside the main line.
5. If the problem turns out bigger than estimated, raise total_thoughts
   and set needs_more_thoughts=true.

Each response includes a current_step plan with ranked tool
recommendations. Treat them as hints: when a recommended tool has high
confidence, call it before continuing the sequence.

## Reasoning worksheets

mental_model, debugging_approach, decision_framework,
collaborative_reasoning, metacognitive_monitoring, scientific_method,
structured_argumentation, creative_thinking each return a structured
worksheet. YOU do the reasoning — fill the worksheet in and carry the
conclusion back into the thought sequence.

## Session continuity

- thought_history returns a session's recorded thoughts and branches.
- clear_session discards a session's in-memory history.
- thought_journal reads the durable archive, which survives restarts;
  use it to recover context from previous sessions.

Sessions idle for over an hour are evicted automatically. Any read of a
session resets its idle timer.`
}
