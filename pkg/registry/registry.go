package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes the two classes of execution agents.
type Kind string

const (
	KindTool      Kind = "tool_agent"
	KindReasoning Kind = "reasoning_agent"
)

// PerformanceTier describes how an agent trades speed for depth.
type PerformanceTier string

const (
	TierFast     PerformanceTier = "fast"
	TierBalanced PerformanceTier = "balanced"
	TierThorough PerformanceTier = "thorough"
)

// CostTier buckets agents by what a single invocation costs.
type CostTier string

const (
	CostInfrastructure CostTier = "infrastructure"
	CostBudget         CostTier = "budget"
	CostStandard       CostTier = "standard"
	CostPremium        CostTier = "premium"
)

// AgentCapability describes one known execution agent.
type AgentCapability struct {
	Name            string          `yaml:"name" json:"name"`
	Kind            Kind            `yaml:"kind" json:"kind"`
	Description     string          `yaml:"description,omitempty" json:"description,omitempty"`
	DomainExpertise []string        `yaml:"domain_expertise,omitempty" json:"domain_expertise,omitempty"`
	Specializations []string        `yaml:"specializations,omitempty" json:"specializations,omitempty"`
	PerformanceTier PerformanceTier `yaml:"performance_tier" json:"performance_tier"`
	CostTier        CostTier        `yaml:"cost_tier" json:"cost_tier"`
}

// PrimaryDomain returns the agent's leading domain tag, or "" for
// general-purpose agents.
func (a AgentCapability) PrimaryDomain() string {
	if len(a.DomainExpertise) == 0 {
		return ""
	}
	return a.DomainExpertise[0]
}

// GeneralPurpose reports whether the agent claims no particular domain.
func (a AgentCapability) GeneralPurpose() bool {
	return len(a.DomainExpertise) == 0
}

// Registry holds agent capabilities in declaration order. Declaration order
// is load-bearing: score ties resolve to the earlier entry.
type Registry struct {
	agents []AgentCapability
	byName map[string]int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds an agent, replacing any previous entry with the same name.
// Agents registered with a free-text description and no explicit expertise
// get their domain tags extracted from the description.
func (r *Registry) Register(a AgentCapability) {
	if len(a.DomainExpertise) == 0 && a.Description != "" {
		a.DomainExpertise = ExtractExpertise(a.Description)
	}
	if idx, ok := r.byName[a.Name]; ok {
		r.agents[idx] = a
		return
	}
	r.byName[a.Name] = len(r.agents)
	r.agents = append(r.agents, a)
}

// Get returns an agent by name.
func (r *Registry) Get(name string) (AgentCapability, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return AgentCapability{}, false
	}
	return r.agents[idx], true
}

// Agents returns all entries in declaration order.
func (r *Registry) Agents() []AgentCapability {
	out := make([]AgentCapability, len(r.agents))
	copy(out, r.agents)
	return out
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return len(r.agents)
}

// expertiseRule maps description substrings to a domain tag. Ordered so
// extraction output is deterministic.
type expertiseRule struct {
	domain   string
	keywords []string
}

var expertiseRules = []expertiseRule{
	{"testing", []string{"test", "playwright", "coverage", "qa"}},
	{"security", []string{"security", "pii", "vulnerability", "sast"}},
	{"database", []string{"database", "postgres", "sql", "migration"}},
	{"regulated_data", []string{"credit", "fcra", "regulated", "lending"}},
	{"documentation", []string{"documentation", "docs", "readme"}},
	{"frontend", []string{"frontend", "react", "ui component"}},
	{"backend", []string{"backend", "api", "service"}},
	{"devops", []string{"devops", "deploy", "docker", "ci/cd"}},
}

// ExtractExpertise derives domain tags from a free-text agent description.
// Substring matching, case-insensitive.
func ExtractExpertise(description string) []string {
	lower := strings.ToLower(description)
	var tags []string
	for _, rule := range expertiseRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				tags = append(tags, rule.domain)
				break
			}
		}
	}
	return tags
}

// registryFile is the YAML document shape for Load.
type registryFile struct {
	Agents []AgentCapability `yaml:"agents"`
}

// Load reads a registry from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	r := New()
	for _, a := range file.Agents {
		if a.Name == "" {
			return nil, fmt.Errorf("registry entry missing name")
		}
		r.Register(a)
	}
	return r, nil
}

// Default returns the built-in agent registry.
func Default() *Registry {
	r := New()

	r.Register(AgentCapability{
		Name:            "qodo-cover",
		Kind:            KindTool,
		Description:     "Automated test generation with playwright support",
		DomainExpertise: []string{"testing"},
		PerformanceTier: TierFast,
		CostTier:        CostInfrastructure,
	})
	r.Register(AgentCapability{
		Name:            "semgrep-scan",
		Kind:            KindTool,
		Description:     "Static analysis and security vulnerability scanning",
		DomainExpertise: []string{"security"},
		Specializations: []string{"security_compliance"},
		PerformanceTier: TierFast,
		CostTier:        CostInfrastructure,
	})
	r.Register(AgentCapability{
		Name:            "coderabbit-review",
		Kind:            KindTool,
		DomainExpertise: []string{"backend", "frontend"},
		PerformanceTier: TierBalanced,
		CostTier:        CostBudget,
	})
	r.Register(AgentCapability{
		Name:            "mintlify-docs",
		Kind:            KindTool,
		DomainExpertise: []string{"documentation"},
		PerformanceTier: TierFast,
		CostTier:        CostBudget,
	})
	r.Register(AgentCapability{
		Name:            "general-executor",
		Kind:            KindTool,
		PerformanceTier: TierBalanced,
		CostTier:        CostStandard,
	})
	r.Register(AgentCapability{
		Name:            "architecture-advisor",
		Kind:            KindReasoning,
		DomainExpertise: []string{"backend", "devops"},
		PerformanceTier: TierThorough,
		CostTier:        CostStandard,
	})
	r.Register(AgentCapability{
		Name:            "compliance-analyst",
		Kind:            KindReasoning,
		DomainExpertise: []string{"regulated_data"},
		Specializations: []string{"regulatory_compliance", "privacy_compliance"},
		PerformanceTier: TierThorough,
		CostTier:        CostPremium,
	})
	r.Register(AgentCapability{
		Name:            "security-strategist",
		Kind:            KindReasoning,
		DomainExpertise: []string{"security"},
		Specializations: []string{"security_compliance"},
		PerformanceTier: TierThorough,
		CostTier:        CostPremium,
	})
	r.Register(AgentCapability{
		Name:            "migration-planner",
		Kind:            KindReasoning,
		DomainExpertise: []string{"database"},
		PerformanceTier: TierThorough,
		CostTier:        CostStandard,
	})

	return r
}
