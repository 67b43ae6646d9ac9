package router

import (
	"sort"

	"github.com/zen-systems/taskrouter/pkg/profile"
)

// maxFallbacks bounds the fallback chain length.
const maxFallbacks = 2

// selectDecision picks the top-scoring candidate and assembles the fallback
// chain. The sort is stable, so equal scores keep registry declaration
// order. An empty candidate list yields NoEligibleAgentError naming the tags
// that could not be satisfied.
func selectDecision(scored []ScoredCandidate, prof profile.TaskProfile) (Decision, error) {
	if len(scored) == 0 {
		return Decision{}, &NoEligibleAgentError{
			DomainTags:     prof.DomainTags,
			ComplianceTags: prof.ComplianceTags,
		}
	}

	ranked := make([]ScoredCandidate, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	decision := Decision{
		Selected: ranked[0],
		Profile:  prof,
	}
	for _, sc := range ranked[1:] {
		if len(decision.Fallbacks) == maxFallbacks {
			break
		}
		decision.Fallbacks = append(decision.Fallbacks, sc)
	}
	return decision, nil
}
