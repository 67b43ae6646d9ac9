package router

import (
	"fmt"
	"strings"

	"github.com/zen-systems/taskrouter/pkg/profile"
	"github.com/zen-systems/taskrouter/pkg/registry"
)

// Score component weights.
const (
	domainMatchWeight     = 20 // per overlapping domain, tool agents
	reasoningDomainBonus  = 25 // flat, reasoning agent primary-domain hit
	complianceMatchWeight = 15 // per overlapping specialization

	hybridDiscount  = 0.8 // fixed coordination overhead between two agents
	hybridBonus     = 25  // granted at or above hybridComplexityFloor
	hybridSurcharge = 0.02

	complexityCostFactor = 0.2
)

// performanceAlignment maps (performance need, agent tier) to a score in
// [3,10]. Kept as a named table so it can be tuned without touching control
// flow.
var performanceAlignment = map[profile.PerformanceNeed]map[registry.PerformanceTier]float64{
	profile.NeedHighPerformance: {
		registry.TierFast:     7,
		registry.TierBalanced: 8,
		registry.TierThorough: 10,
	},
	profile.NeedBalanced: {
		registry.TierFast:     7,
		registry.TierBalanced: 10,
		registry.TierThorough: 7,
	},
	profile.NeedCostOptimized: {
		registry.TierFast:     10,
		registry.TierBalanced: 7,
		registry.TierThorough: 3,
	},
}

// costEfficiency maps (agent cost tier, budget constraint) to a score in
// [3,10], rewarding tier alignment.
var costEfficiency = map[registry.CostTier]map[profile.CostConstraint]float64{
	registry.CostInfrastructure: {
		profile.ConstraintBudget:   10,
		profile.ConstraintStandard: 9,
		profile.ConstraintPremium:  8,
	},
	registry.CostBudget: {
		profile.ConstraintBudget:   10,
		profile.ConstraintStandard: 8,
		profile.ConstraintPremium:  6,
	},
	registry.CostStandard: {
		profile.ConstraintBudget:   5,
		profile.ConstraintStandard: 10,
		profile.ConstraintPremium:  8,
	},
	registry.CostPremium: {
		profile.ConstraintBudget:   3,
		profile.ConstraintStandard: 6,
		profile.ConstraintPremium:  10,
	},
}

// baseCost maps cost tiers to per-invocation base cost in currency-agnostic
// units.
var baseCost = map[registry.CostTier]float64{
	registry.CostInfrastructure: 0.01,
	registry.CostBudget:         0.05,
	registry.CostStandard:       0.10,
	registry.CostPremium:        0.25,
}

// Historical success-rate bonus thresholds.
const (
	historyExcellentRate  = 0.9
	historyGoodRate       = 0.8
	historyPoorRate       = 0.6
	historyExcellentBonus = 10
	historyGoodBonus      = 5
	historyPoorPenalty    = -5
)

// scoreAgent computes the five-component score for a single agent. rates
// holds rolling success rates keyed by agent name; agents absent from the
// map have no history signal and get no bonus.
func scoreAgent(agent registry.AgentCapability, prof profile.TaskProfile, rates map[string]float64) (float64, string) {
	var reasons []string

	var domain float64
	switch agent.Kind {
	case registry.KindReasoning:
		if primary := agent.PrimaryDomain(); primary != "" && prof.HasDomain(primary) {
			domain = reasoningDomainBonus
			reasons = append(reasons, fmt.Sprintf("primary domain %s matched (+%.0f)", primary, domain))
		}
	default:
		matches := overlap(agent.DomainExpertise, prof.DomainTags)
		if matches > 0 {
			domain = float64(domainMatchWeight * matches)
			reasons = append(reasons, fmt.Sprintf("%d domain match(es) (+%.0f)", matches, domain))
		}
	}

	var compliance float64
	if matches := overlap(agent.Specializations, prof.ComplianceTags); matches > 0 {
		compliance = float64(complianceMatchWeight * matches)
		reasons = append(reasons, fmt.Sprintf("%d compliance match(es) (+%.0f)", matches, compliance))
	}

	perf := performanceAlignment[prof.PerformanceNeed][agent.PerformanceTier]
	reasons = append(reasons, fmt.Sprintf("performance alignment +%.0f", perf))

	cost := costEfficiency[agent.CostTier][prof.CostConstraint]
	reasons = append(reasons, fmt.Sprintf("cost efficiency +%.0f", cost))

	var history float64
	if rate, ok := rates[agent.Name]; ok {
		history = historyBonus(rate)
		if history != 0 {
			reasons = append(reasons, fmt.Sprintf("success rate %.2f (%+.0f)", rate, history))
		}
	}

	return domain + compliance + perf + cost + history, strings.Join(reasons, "; ")
}

func historyBonus(rate float64) float64 {
	switch {
	case rate > historyExcellentRate:
		return historyExcellentBonus
	case rate > historyGoodRate:
		return historyGoodBonus
	case rate < historyPoorRate:
		return historyPoorPenalty
	default:
		return 0
	}
}

// scoreCandidate scores any candidate shape and fills in estimates.
func scoreCandidate(c Candidate, prof profile.TaskProfile, rates map[string]float64) ScoredCandidate {
	if c.Kind == CandidateHybrid {
		return scoreHybrid(c, prof, rates)
	}

	score, reasoning := scoreAgent(c.Agent, prof, rates)
	return ScoredCandidate{
		Candidate:     c,
		Score:         score,
		EstimatedCost: agentCost(c.Agent, prof.ComplexityScore),
		Performance:   predictPerformance(c.Agent.PerformanceTier, prof.ComplexityScore),
		Reasoning:     reasoning,
	}
}

// scoreHybrid discounts the member sum by the coordination factor, then adds
// the complexity bonus. The discount always strictly reduces the combined
// score relative to the raw sum.
func scoreHybrid(c Candidate, prof profile.TaskProfile, rates map[string]float64) ScoredCandidate {
	toolScore, toolReason := scoreAgent(c.Tool, prof, rates)
	reasoningScore, reasoningReason := scoreAgent(c.Reasoning, prof, rates)

	score := hybridDiscount * (toolScore + reasoningScore)
	var bonus float64
	if prof.ComplexityScore >= hybridComplexityFloor {
		bonus = hybridBonus
	}
	score += bonus

	reasoning := fmt.Sprintf("hybrid plan (coordination discount %.0f%%, bonus +%.0f): tool[%s]; reasoning[%s]",
		(1-hybridDiscount)*100, bonus, toolReason, reasoningReason)

	return ScoredCandidate{
		Candidate:     c,
		Score:         score,
		EstimatedCost: hybridCost(c, prof.ComplexityScore),
		Performance:   predictPerformance(c.Reasoning.PerformanceTier, prof.ComplexityScore),
		Reasoning:     reasoning,
	}
}

// agentCost scales the tier base cost with task complexity.
func agentCost(agent registry.AgentCapability, complexity int) float64 {
	return baseCost[agent.CostTier] * (1 + complexityCostFactor*float64(complexity))
}

// hybridCost combines both member base costs plus a coordination surcharge.
func hybridCost(c Candidate, complexity int) float64 {
	combined := baseCost[c.Tool.CostTier] + baseCost[c.Reasoning.CostTier]
	return combined*(1+complexityCostFactor*float64(complexity)) + hybridSurcharge
}

// predictPerformance maps tier and complexity onto the coarse prediction
// enum. Hybrids use their reasoning member's tier, the depth driver.
func predictPerformance(tier registry.PerformanceTier, complexity int) PerformancePrediction {
	switch {
	case tier == registry.TierThorough && complexity <= 3:
		return PredictExcellent
	case tier == registry.TierFast && complexity >= 4:
		return PredictModerate
	default:
		return PredictGood
	}
}

// scoreAll scores every pooled candidate, tool agents first, then reasoning
// agents, then hybrids, each in registry declaration order. That ordering is
// what stable sorting later preserves for ties.
func scoreAll(pools Pools, prof profile.TaskProfile, rates map[string]float64) []ScoredCandidate {
	scored := make([]ScoredCandidate, 0, len(pools.ToolAgents)+len(pools.ReasoningAgents)+len(pools.Hybrids))
	for _, agent := range pools.ToolAgents {
		scored = append(scored, scoreCandidate(Candidate{Kind: CandidateTool, Agent: agent}, prof, rates))
	}
	for _, agent := range pools.ReasoningAgents {
		scored = append(scored, scoreCandidate(Candidate{Kind: CandidateReasoning, Agent: agent}, prof, rates))
	}
	for _, hybrid := range pools.Hybrids {
		scored = append(scored, scoreCandidate(hybrid, prof, rates))
	}
	return scored
}
