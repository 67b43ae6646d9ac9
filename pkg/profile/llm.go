package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// generateFunc sends a classification prompt to a model and returns the raw
// completion text.
type generateFunc func(ctx context.Context, prompt string) (string, error)

// LLMTagger classifies task text with a language model instead of keyword
// matching. Tags outside the fixed vocabulary are rejected, and any model
// error falls back to the keyword tagger so routing never blocks on a
// provider outage. The engine never constructs one of these itself; the
// default pipeline does no I/O.
type LLMTagger struct {
	provider string
	model    string
	generate generateFunc
	fallback Tagger

	// memo for the last classified text; Analyze calls DomainTags and
	// ComplianceTags back to back on the same string.
	lastText string
	lastPick *llmPick
}

type llmPick struct {
	Domains    []string `json:"domains"`
	Compliance []string `json:"compliance"`
}

// DomainTags classifies via the model, falling back to keywords on error.
func (t *LLMTagger) DomainTags(text string) []string {
	pick, err := t.classify(text)
	if err != nil {
		return t.fallback.DomainTags(text)
	}
	return pick.Domains
}

// ComplianceTags classifies via the model, falling back to keywords on error.
func (t *LLMTagger) ComplianceTags(text string) []string {
	pick, err := t.classify(text)
	if err != nil {
		return t.fallback.ComplianceTags(text)
	}
	return pick.Compliance
}

func (t *LLMTagger) classify(text string) (*llmPick, error) {
	if t.lastPick != nil && t.lastText == text {
		return t.lastPick, nil
	}

	resp, err := t.generate(context.Background(), buildTaggerPrompt(text))
	if err != nil {
		return nil, err
	}

	pick, err := parseTaggerResponse(resp)
	if err != nil {
		return nil, err
	}

	t.lastText = text
	t.lastPick = pick
	return pick, nil
}

func buildTaggerPrompt(taskText string) string {
	var sb strings.Builder
	sb.WriteString("You are a task classifier. Tag the task below.\n")
	sb.WriteString("Return ONLY JSON: {\"domains\":[...],\"compliance\":[...]}.\n\n")
	sb.WriteString("Allowed domains: ")
	sb.WriteString(strings.Join(vocabulary(domainRules), ", "))
	sb.WriteString("\nAllowed compliance tags: ")
	sb.WriteString(strings.Join(vocabulary(complianceRules), ", "))
	sb.WriteString("\n\nTask:\n")
	sb.WriteString(taskText)
	return sb.String()
}

func parseTaggerResponse(content string) (*llmPick, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var pick llmPick
	if err := json.Unmarshal([]byte(content), &pick); err != nil {
		return nil, err
	}

	pick.Domains = filterVocabulary(pick.Domains, domainRules)
	pick.Compliance = filterVocabulary(pick.Compliance, complianceRules)
	return &pick, nil
}

// filterVocabulary drops tags outside the fixed vocabulary and reorders the
// survivors into rule order so LLM output is as deterministic downstream as
// keyword output.
func filterVocabulary(tags []string, rules []tagRule) []string {
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		seen[strings.ToLower(strings.TrimSpace(tag))] = true
	}
	var out []string
	for _, rule := range rules {
		if seen[rule.tag] {
			out = append(out, rule.tag)
		}
	}
	return out
}

func vocabulary(rules []tagRule) []string {
	out := make([]string, len(rules))
	for i, rule := range rules {
		out[i] = rule.tag
	}
	return out
}

func newLLMTagger(provider, model string, gen generateFunc) *LLMTagger {
	return &LLMTagger{
		provider: provider,
		model:    model,
		generate: gen,
		fallback: KeywordTagger{},
	}
}

// Provider returns the backing provider's identifier.
func (t *LLMTagger) Provider() string {
	return t.provider
}

// Model returns the model used for classification.
func (t *LLMTagger) Model() string {
	return t.model
}

var _ Tagger = (*LLMTagger)(nil)

func errEmptyResponse(provider string) error {
	return fmt.Errorf("%s returned empty response", provider)
}
