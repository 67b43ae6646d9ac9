package router

import (
	"github.com/zen-systems/taskrouter/pkg/profile"
	"github.com/zen-systems/taskrouter/pkg/registry"
)

// hybridComplexityFloor is the minimum complexity at which composite plans
// are worth their coordination overhead.
const hybridComplexityFloor = 3

// Pools holds the candidate pools produced by filtering, each preserving
// registry declaration order.
type Pools struct {
	ToolAgents      []registry.AgentCapability
	ReasoningAgents []registry.AgentCapability
	Hybrids         []Candidate
}

// Empty reports whether filtering produced no candidates at all.
func (p Pools) Empty() bool {
	return len(p.ToolAgents) == 0 && len(p.ReasoningAgents) == 0 && len(p.Hybrids) == 0
}

// Filter intersects the profile against the registry. Hybrid pairs are only
// built for complexity >= 3, from eligible infrastructure-tier tool agents
// crossed with eligible reasoning agents.
func Filter(prof profile.TaskProfile, reg *registry.Registry) Pools {
	var pools Pools

	for _, agent := range reg.Agents() {
		if !eligible(agent, prof) {
			continue
		}
		switch agent.Kind {
		case registry.KindTool:
			pools.ToolAgents = append(pools.ToolAgents, agent)
		case registry.KindReasoning:
			pools.ReasoningAgents = append(pools.ReasoningAgents, agent)
		}
	}

	if prof.ComplexityScore >= hybridComplexityFloor {
		for _, tool := range pools.ToolAgents {
			if tool.CostTier != registry.CostInfrastructure {
				continue
			}
			for _, reasoning := range pools.ReasoningAgents {
				pools.Hybrids = append(pools.Hybrids, Candidate{
					Kind:      CandidateHybrid,
					Tool:      tool,
					Reasoning: reasoning,
				})
			}
		}
	}

	return pools
}

// eligible is the binary predicate deciding whether an agent may be scored.
// General-purpose agents always qualify; others need a domain or
// specialization overlap with the profile.
func eligible(agent registry.AgentCapability, prof profile.TaskProfile) bool {
	if agent.GeneralPurpose() {
		return true
	}
	if overlap(agent.DomainExpertise, prof.DomainTags) > 0 {
		return true
	}
	return overlap(agent.Specializations, prof.ComplianceTags) > 0
}

// overlap counts elements common to both slices.
func overlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	n := 0
	for _, s := range b {
		if set[s] {
			n++
		}
	}
	return n
}
