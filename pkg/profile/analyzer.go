package profile

import "strings"

// Tagger classifies task text into domain and compliance tags. The default
// implementation is keyword substring matching; hosts can swap in an
// embedding- or LLM-backed classifier without touching the rest of the
// pipeline.
type Tagger interface {
	DomainTags(text string) []string
	ComplianceTags(text string) []string
}

// KeywordTagger is the default Tagger: case-insensitive substring matching
// against the fixed domain and compliance vocabularies.
type KeywordTagger struct{}

// DomainTags returns every domain whose keyword list matches the text.
func (KeywordTagger) DomainTags(text string) []string {
	return matchRules(text, domainRules)
}

// ComplianceTags returns every compliance tag whose keyword list matches.
func (KeywordTagger) ComplianceTags(text string) []string {
	return matchRules(text, complianceRules)
}

func matchRules(text string, rules []tagRule) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}
	return tags
}

// Analyzer derives TaskProfiles from raw task text and context.
type Analyzer struct {
	tagger Tagger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithTagger replaces the default keyword tagger.
func WithTagger(t Tagger) AnalyzerOption {
	return func(a *Analyzer) {
		if t != nil {
			a.tagger = t
		}
	}
}

// NewAnalyzer creates an analyzer with the keyword tagger unless overridden.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{tagger: KeywordTagger{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze builds a TaskProfile. It never fails: absent or unrecognized
// context fields take their documented defaults, and text that matches no
// keywords simply produces empty tag sets.
func (a *Analyzer) Analyze(taskText string, ctx TaskContext) TaskProfile {
	return TaskProfile{
		ComplexityScore: complexityScore(taskText, ctx),
		DomainTags:      a.tagger.DomainTags(taskText),
		ComplianceTags:  a.tagger.ComplianceTags(taskText),
		PerformanceNeed: performanceNeed(ctx),
		CostConstraint:  costConstraint(ctx),
	}
}

// Analyze is the package-level convenience using the default keyword tagger.
func Analyze(taskText string, ctx TaskContext) TaskProfile {
	return NewAnalyzer().Analyze(taskText, ctx)
}

func complexityScore(taskText string, ctx TaskContext) int {
	score := 1

	if ctx.FileCount > 5 {
		score += 2
	} else if ctx.FileCount > 2 {
		score++
	}

	lower := strings.ToLower(taskText)
	for _, kw := range complexityKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}

	for _, kw := range regulatedKeywords {
		if strings.Contains(lower, kw) {
			score++
			break
		}
	}

	if score > 5 {
		score = 5
	}
	return score
}

func performanceNeed(ctx TaskContext) PerformanceNeed {
	switch {
	case ctx.Urgency == UrgencyHigh || ctx.QualityRequirement == QualityProduction:
		return NeedHighPerformance
	case ctx.Urgency == UrgencyLow || ctx.QualityRequirement == QualityDraft:
		return NeedCostOptimized
	default:
		return NeedBalanced
	}
}

func costConstraint(ctx TaskContext) CostConstraint {
	switch ctx.BudgetConstraint {
	case string(ConstraintBudget):
		return ConstraintBudget
	case string(ConstraintPremium):
		return ConstraintPremium
	default:
		return ConstraintStandard
	}
}
