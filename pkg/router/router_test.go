package router

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zen-systems/taskrouter/pkg/profile"
	"github.com/zen-systems/taskrouter/pkg/registry"
)

func TestRoute_EmptyRegistry(t *testing.T) {
	engine := New(registry.New())
	_, err := engine.Route("anything", profile.TaskContext{})
	if !errors.Is(err, ErrNoAgentsAvailable) {
		t.Errorf("Route() error = %v, want ErrNoAgentsAvailable", err)
	}
}

func TestRoute_NoEligibleAgent(t *testing.T) {
	// Only a frontend specialist registered, task is purely database work
	// with no compliance angle and no general-purpose agent to absorb it.
	reg := testRegistry(registry.AgentCapability{
		Name: "fe-only", Kind: registry.KindTool,
		DomainExpertise: []string{"frontend"},
		PerformanceTier: registry.TierFast,
		CostTier:        registry.CostBudget,
	})

	engine := New(reg)
	_, err := engine.Route("Plan the postgres migration for the orders schema", profile.TaskContext{})

	var noEligible *NoEligibleAgentError
	if !errors.As(err, &noEligible) {
		t.Fatalf("Route() error = %v, want NoEligibleAgentError", err)
	}
	found := false
	for _, tag := range noEligible.DomainTags {
		if tag == "database" {
			found = true
		}
	}
	if !found {
		t.Errorf("error should name the unmatched database tag, got %v", noEligible.DomainTags)
	}
	if !IsNoEligibleAgent(err) {
		t.Error("IsNoEligibleAgent() = false")
	}
}

func TestRoute_CreditScoreScenario(t *testing.T) {
	reg := testRegistry(registry.AgentCapability{
		Name: "AgentA", Kind: registry.KindTool,
		DomainExpertise: []string{"testing"},
		PerformanceTier: registry.TierFast,
		CostTier:        registry.CostBudget,
	})

	engine := New(reg)
	decision, err := engine.Route(
		"Generate tests for credit score calculation with compliance",
		profile.TaskContext{FileCount: 3, Urgency: "normal", BudgetConstraint: "standard"},
	)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	prof := decision.Profile
	for _, want := range []string{"testing", "regulated_data"} {
		if !prof.HasDomain(want) {
			t.Errorf("DomainTags = %v, missing %s", prof.DomainTags, want)
		}
	}
	if prof.ComplexityScore < 2 {
		t.Errorf("ComplexityScore = %d, want >= 2", prof.ComplexityScore)
	}

	if decision.Selected.Candidate.Name() != "AgentA" {
		t.Fatalf("Selected = %s, want AgentA", decision.Selected.Candidate.Name())
	}
	// Non-zero domain-match component: AgentA with no domain overlap would
	// score lower than it does here.
	noOverlap := profile.TaskProfile{
		ComplexityScore: prof.ComplexityScore,
		PerformanceNeed: prof.PerformanceNeed,
		CostConstraint:  prof.CostConstraint,
	}
	agent, _ := reg.Get("AgentA")
	baseline, _ := scoreAgent(agent, noOverlap, nil)
	if decision.Selected.Score <= baseline {
		t.Errorf("domain-match component missing: score %.1f vs baseline %.1f",
			decision.Selected.Score, baseline)
	}
}

func TestRoute_Deterministic(t *testing.T) {
	engine := New(registry.Default())
	ctx := profile.TaskContext{FileCount: 4, Urgency: profile.UrgencyHigh}
	task := "Refactor the security architecture of the backend API"

	first, err := engine.Route(task, ctx)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	second, err := engine.Route(task, ctx)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Route() diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestRoute_FallbackOrdering(t *testing.T) {
	engine := New(registry.Default())
	decision, err := engine.Route(
		"Migrate the database schema and audit security compliance",
		profile.TaskContext{FileCount: 8},
	)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if len(decision.Fallbacks) > maxFallbacks {
		t.Fatalf("fallbacks = %d, want <= %d", len(decision.Fallbacks), maxFallbacks)
	}

	prev := decision.Selected.Score
	for i, fb := range decision.Fallbacks {
		if fb.Score > prev {
			t.Errorf("fallback %d score %.1f exceeds predecessor %.1f", i, fb.Score, prev)
		}
		prev = fb.Score
		if fb.Candidate.Name() == decision.Selected.Candidate.Name() &&
			fb.Candidate.Kind == decision.Selected.Candidate.Kind {
			t.Errorf("fallback %d duplicates selected candidate %s", i, fb.Candidate.Name())
		}
	}
}

func TestSelectDecision_TieKeepsDeclarationOrder(t *testing.T) {
	first := registry.AgentCapability{
		Name: "first", Kind: registry.KindTool,
		PerformanceTier: registry.TierBalanced,
		CostTier:        registry.CostStandard,
	}
	second := first
	second.Name = "second"

	prof := profile.TaskProfile{
		ComplexityScore: 1,
		PerformanceNeed: profile.NeedBalanced,
		CostConstraint:  profile.ConstraintStandard,
	}
	pools := Filter(prof, testRegistry(first, second))
	scored := scoreAll(pools, prof, nil)

	decision, err := selectDecision(scored, prof)
	if err != nil {
		t.Fatalf("selectDecision() error = %v", err)
	}
	if decision.Selected.Candidate.Name() != "first" {
		t.Errorf("tie resolved to %s, want first (declaration order)", decision.Selected.Candidate.Name())
	}
}

func TestRoute_HybridWinsComplexComplianceTask(t *testing.T) {
	// An eligible infrastructure tool plus a strongly matching reasoning
	// agent should beat either alone once the hybrid bonus applies.
	reg := testRegistry(
		registry.AgentCapability{
			Name: "scan-tool", Kind: registry.KindTool,
			DomainExpertise: []string{"security"},
			PerformanceTier: registry.TierFast,
			CostTier:        registry.CostInfrastructure,
		},
		registry.AgentCapability{
			Name: "strategist", Kind: registry.KindReasoning,
			DomainExpertise: []string{"security"},
			Specializations: []string{"security_compliance"},
			PerformanceTier: registry.TierThorough,
			CostTier:        registry.CostPremium,
		},
	)

	engine := New(reg)
	decision, err := engine.Route(
		"Run a full security review of the auth integration architecture for OWASP compliance",
		profile.TaskContext{FileCount: 9, QualityRequirement: profile.QualityProduction},
	)
	if err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	if decision.Selected.Candidate.Kind != CandidateHybrid {
		t.Errorf("Selected kind = %s, want hybrid (score %.1f, reasoning %s)",
			decision.Selected.Candidate.Kind, decision.Selected.Score, decision.Selected.Reasoning)
	}
}

func TestEngine_MetricsRecordsDecisions(t *testing.T) {
	engine := New(registry.Default())
	tasks := []string{
		"Generate tests for the parser",
		"Write documentation for the readme",
		"Deploy the docker pipeline",
	}
	for _, task := range tasks {
		if _, err := engine.Route(task, profile.TaskContext{}); err != nil {
			t.Fatalf("Route(%q) error = %v", task, err)
		}
	}

	report := engine.Metrics(0)
	if report.WindowSize != len(tasks) {
		t.Errorf("WindowSize = %d, want %d", report.WindowSize, len(tasks))
	}
	total := 0
	for _, n := range report.AgentDistribution {
		total += n
	}
	if total != len(tasks) {
		t.Errorf("distribution total = %d, want %d", total, len(tasks))
	}
}
