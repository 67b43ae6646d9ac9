package router

import (
	"github.com/zen-systems/taskrouter/pkg/profile"
	"github.com/zen-systems/taskrouter/pkg/registry"
)

// CandidateKind labels the shape of a candidate execution plan.
type CandidateKind string

const (
	CandidateTool      CandidateKind = "tool_agent"
	CandidateReasoning CandidateKind = "reasoning_agent"
	CandidateHybrid    CandidateKind = "hybrid"
)

// Candidate is either a single agent or a hybrid (tool, reasoning) pair.
type Candidate struct {
	Kind CandidateKind `json:"kind"`

	// Agent is set for single-agent candidates.
	Agent registry.AgentCapability `json:"agent,omitempty"`

	// Tool and Reasoning are set for hybrid candidates.
	Tool      registry.AgentCapability `json:"tool,omitempty"`
	Reasoning registry.AgentCapability `json:"reasoning,omitempty"`
}

// Name returns the candidate's display name; hybrids join both members.
func (c Candidate) Name() string {
	if c.Kind == CandidateHybrid {
		return c.Tool.Name + "+" + c.Reasoning.Name
	}
	return c.Agent.Name
}

// PerformancePrediction is the expected execution quality for a candidate.
type PerformancePrediction string

const (
	PredictExcellent PerformancePrediction = "excellent"
	PredictGood      PerformancePrediction = "good"
	PredictModerate  PerformancePrediction = "moderate"
)

// ScoredCandidate is a candidate with its computed score and estimates.
type ScoredCandidate struct {
	Candidate     Candidate             `json:"candidate"`
	Score         float64               `json:"score"`
	EstimatedCost float64               `json:"estimated_cost"`
	Performance   PerformancePrediction `json:"performance_prediction"`
	Reasoning     string                `json:"reasoning"`
}

// Decision is the outcome of one routing call: the winning candidate plus a
// fallback chain of up to two runners-up.
type Decision struct {
	Selected  ScoredCandidate     `json:"selected"`
	Fallbacks []ScoredCandidate   `json:"fallbacks,omitempty"`
	Profile   profile.TaskProfile `json:"profile"`
}
