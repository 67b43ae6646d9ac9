package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractExpertise(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    []string
	}{
		{
			name:        "testing keywords",
			description: "Automated test generation with playwright support",
			expected:    []string{"testing"},
		},
		{
			name:        "regulated data keywords",
			description: "Specialist for credit decisioning and FCRA adverse action notices",
			expected:    []string{"regulated_data"},
		},
		{
			name:        "security keywords",
			description: "Scans for PII leaks and known vulnerabilities",
			expected:    []string{"security"},
		},
		{
			name:        "database keywords",
			description: "Plans postgres schema changes",
			expected:    []string{"database"},
		},
		{
			name:        "multiple domains keep rule order",
			description: "Reviews API services and their test coverage",
			expected:    []string{"testing", "backend"},
		},
		{
			name:        "no match",
			description: "General purpose helper",
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractExpertise(tt.description)
			if len(got) != len(tt.expected) {
				t.Fatalf("ExtractExpertise() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("ExtractExpertise()[%d] = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRegistry_DeclarationOrder(t *testing.T) {
	r := New()
	r.Register(AgentCapability{Name: "alpha", Kind: KindTool})
	r.Register(AgentCapability{Name: "beta", Kind: KindReasoning})
	r.Register(AgentCapability{Name: "gamma", Kind: KindTool})

	agents := r.Agents()
	want := []string{"alpha", "beta", "gamma"}
	if len(agents) != len(want) {
		t.Fatalf("Agents() returned %d entries, want %d", len(agents), len(want))
	}
	for i, name := range want {
		if agents[i].Name != name {
			t.Errorf("Agents()[%d].Name = %s, want %s", i, agents[i].Name, name)
		}
	}
}

func TestRegistry_RegisterReplacesInPlace(t *testing.T) {
	r := New()
	r.Register(AgentCapability{Name: "alpha", Kind: KindTool, CostTier: CostBudget})
	r.Register(AgentCapability{Name: "beta", Kind: KindTool})
	r.Register(AgentCapability{Name: "alpha", Kind: KindTool, CostTier: CostPremium})

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	a, ok := r.Get("alpha")
	if !ok {
		t.Fatal("Get(alpha) not found")
	}
	if a.CostTier != CostPremium {
		t.Errorf("replacement not applied, CostTier = %s", a.CostTier)
	}
	if r.Agents()[0].Name != "alpha" {
		t.Errorf("replacement moved alpha out of position 0")
	}
}

func TestRegister_ExtractsExpertiseFromDescription(t *testing.T) {
	r := New()
	r.Register(AgentCapability{
		Name:        "cover-bot",
		Kind:        KindTool,
		Description: "Generates unit test suites",
	})

	a, _ := r.Get("cover-bot")
	if len(a.DomainExpertise) != 1 || a.DomainExpertise[0] != "testing" {
		t.Errorf("DomainExpertise = %v, want [testing]", a.DomainExpertise)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.yaml")
	data := `agents:
  - name: cover-bot
    kind: tool_agent
    domain_expertise: [testing]
    performance_tier: fast
    cost_tier: infrastructure
  - name: advisor
    kind: reasoning_agent
    description: "Reviews backend API designs"
    performance_tier: thorough
    cost_tier: premium
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	advisor, ok := r.Get("advisor")
	if !ok {
		t.Fatal("advisor not loaded")
	}
	if advisor.PrimaryDomain() != "backend" {
		t.Errorf("description extraction failed, PrimaryDomain = %q", advisor.PrimaryDomain())
	}
}

func TestLoad_MissingName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.yaml")
	if err := os.WriteFile(path, []byte("agents:\n  - kind: tool_agent\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for entry without name")
	}
}

func TestDefault_HasBothKindsAndInfrastructureTier(t *testing.T) {
	r := Default()
	var tools, reasoners, infra int
	for _, a := range r.Agents() {
		switch a.Kind {
		case KindTool:
			tools++
			if a.CostTier == CostInfrastructure {
				infra++
			}
		case KindReasoning:
			reasoners++
		}
	}
	if tools == 0 || reasoners == 0 {
		t.Errorf("default registry missing a kind: tools=%d reasoners=%d", tools, reasoners)
	}
	if infra == 0 {
		t.Error("default registry has no infrastructure-tier tool agent; hybrids would never form")
	}
}
