// Package profile turns a raw task description and ambient context into the
// structured TaskProfile the routing pipeline consumes.
package profile

// PerformanceNeed captures how much the caller cares about execution quality
// versus cost.
type PerformanceNeed string

const (
	NeedHighPerformance PerformanceNeed = "high_performance"
	NeedBalanced        PerformanceNeed = "balanced"
	NeedCostOptimized   PerformanceNeed = "cost_optimized"
)

// CostConstraint is the caller's budget tier.
type CostConstraint string

const (
	ConstraintBudget   CostConstraint = "budget"
	ConstraintStandard CostConstraint = "standard"
	ConstraintPremium  CostConstraint = "premium"
)

// Urgency levels accepted in TaskContext.
const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

// Quality requirement levels accepted in TaskContext.
const (
	QualityDraft      = "draft"
	QualityStandard   = "standard"
	QualityProduction = "production"
)

// TaskContext carries the ambient signals that accompany a task description.
// All fields are optional; zero values take documented defaults.
type TaskContext struct {
	FileCount          int    `json:"file_count,omitempty"`
	Urgency            string `json:"urgency,omitempty"`
	QualityRequirement string `json:"quality_requirement,omitempty"`
	BudgetConstraint   string `json:"budget_constraint,omitempty"`
}

// TaskProfile is the derived, immutable representation of a routing request.
type TaskProfile struct {
	ComplexityScore int             `json:"complexity_score"`
	DomainTags      []string        `json:"domain_tags,omitempty"`
	PerformanceNeed PerformanceNeed `json:"performance_need"`
	CostConstraint  CostConstraint  `json:"cost_constraint"`
	ComplianceTags  []string        `json:"compliance_tags,omitempty"`
}

// HasDomain reports whether the profile carries the given domain tag.
func (p TaskProfile) HasDomain(tag string) bool {
	for _, t := range p.DomainTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasCompliance reports whether the profile carries the given compliance tag.
func (p TaskProfile) HasCompliance(tag string) bool {
	for _, t := range p.ComplianceTags {
		if t == tag {
			return true
		}
	}
	return false
}
