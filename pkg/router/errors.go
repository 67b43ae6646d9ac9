package router

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAgentsAvailable means the registry is empty. This is a configuration
// error, fatal to the host; there is nothing to retry.
var ErrNoAgentsAvailable = errors.New("no agents available: registry is empty")

// NoEligibleAgentError means a well-formed task matched no candidate. It
// carries the tags that could not be satisfied so callers can surface a
// useful "no suitable agent" result.
type NoEligibleAgentError struct {
	DomainTags     []string
	ComplianceTags []string
}

func (e *NoEligibleAgentError) Error() string {
	if e == nil {
		return "no eligible agent"
	}
	var parts []string
	if len(e.DomainTags) > 0 {
		parts = append(parts, "domains ["+strings.Join(e.DomainTags, ", ")+"]")
	}
	if len(e.ComplianceTags) > 0 {
		parts = append(parts, "compliance ["+strings.Join(e.ComplianceTags, ", ")+"]")
	}
	if len(parts) == 0 {
		return "no eligible agent: task matched no domain and no general-purpose agent is registered"
	}
	return fmt.Sprintf("no eligible agent for %s", strings.Join(parts, " and "))
}

// IsNoEligibleAgent reports whether err is a NoEligibleAgentError.
func IsNoEligibleAgent(err error) bool {
	var target *NoEligibleAgentError
	return errors.As(err, &target)
}
