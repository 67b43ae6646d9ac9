// Package router selects which execution agent should handle a development
// task. It filters the capability registry against an analyzed task profile,
// scores every eligible candidate, and returns the winner with a fallback
// chain, recording each decision in a bounded history.
package router

import (
	"log"

	"github.com/zen-systems/taskrouter/pkg/metrics"
	"github.com/zen-systems/taskrouter/pkg/profile"
	"github.com/zen-systems/taskrouter/pkg/registry"
)

// Engine is the routing engine facade. Each instance owns its own history
// tracker, so per-tenant engines can coexist without shared state.
type Engine struct {
	registry *registry.Registry
	analyzer *profile.Analyzer
	tracker  *metrics.Tracker
	debug    bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithTagger swaps the task classifier used by the analyzer.
func WithTagger(t profile.Tagger) Option {
	return func(e *Engine) {
		e.analyzer = profile.NewAnalyzer(profile.WithTagger(t))
	}
}

// WithHistoryCapacity overrides the history ring buffer capacity.
func WithHistoryCapacity(n int) Option {
	return func(e *Engine) {
		e.tracker = metrics.NewTracker(n)
	}
}

// WithDebug enables debug logging.
func WithDebug(debug bool) Option {
	return func(e *Engine) {
		e.debug = debug
	}
}

// New creates an engine over a pre-loaded registry.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		analyzer: profile.NewAnalyzer(),
		tracker:  metrics.NewTracker(metrics.DefaultCapacity),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Route analyzes the task, filters and scores candidates, selects a
// decision, and records it. Returns ErrNoAgentsAvailable for an empty
// registry and NoEligibleAgentError when nothing qualifies.
func (e *Engine) Route(taskText string, ctx profile.TaskContext) (*Decision, error) {
	if e.registry == nil || e.registry.Len() == 0 {
		return nil, ErrNoAgentsAvailable
	}

	prof := e.analyzer.Analyze(taskText, ctx)
	if e.debug {
		log.Printf("[router] profile complexity=%d domains=%v compliance=%v need=%s budget=%s",
			prof.ComplexityScore, prof.DomainTags, prof.ComplianceTags, prof.PerformanceNeed, prof.CostConstraint)
	}

	pools := Filter(prof, e.registry)
	scored := scoreAll(pools, prof, e.tracker.SuccessRates())

	decision, err := selectDecision(scored, prof)
	if err != nil {
		return nil, err
	}
	if e.debug {
		log.Printf("[router] selected %s score=%.1f cost=%.4f fallbacks=%d",
			decision.Selected.Candidate.Name(), decision.Selected.Score,
			decision.Selected.EstimatedCost, len(decision.Fallbacks))
	}

	e.tracker.Record(metrics.Entry{
		TaskSummary:   taskText,
		AgentName:     decision.Selected.Candidate.Name(),
		AgentKind:     string(decision.Selected.Candidate.Kind),
		Score:         decision.Selected.Score,
		EstimatedCost: decision.Selected.EstimatedCost,
		Reasoning:     decision.Selected.Reasoning,
	})

	return &decision, nil
}

// Metrics aggregates the most recent windowSize recorded decisions.
func (e *Engine) Metrics(windowSize int) metrics.Report {
	return e.tracker.Report(windowSize)
}

// Tracker exposes the engine's history tracker, primarily so hosts can
// report execution outcomes back for the success-rate bonus.
func (e *Engine) Tracker() *metrics.Tracker {
	return e.tracker
}
