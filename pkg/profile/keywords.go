package profile

// tagRule maps keyword substrings to a tag. Rules are ordered so the tag
// slices produced by matching are deterministic.
type tagRule struct {
	tag      string
	keywords []string
}

// domainRules is the fixed domain vocabulary. Matching is plain substring
// search, case-insensitive, no tokenization: "test" inside "attesting"
// counts as a match.
var domainRules = []tagRule{
	{"testing", []string{"test", "coverage", "playwright", "unit", "e2e"}},
	{"security", []string{"security", "vulnerability", "pii", "auth", "encrypt"}},
	{"database", []string{"database", "postgres", "sql", "migration", "schema"}},
	{"documentation", []string{"document", "readme", "docs", "comment"}},
	{"frontend", []string{"frontend", "react", "css", "component", "ui"}},
	{"backend", []string{"backend", "api", "endpoint", "server", "service"}},
	{"devops", []string{"deploy", "docker", "kubernetes", "pipeline", "ci/cd"}},
	{"regulated_data", []string{"credit", "fcra", "lending", "underwriting", "score calculation"}},
}

// complianceRules map task text onto compliance tags, matched the same way
// as domainRules.
var complianceRules = []tagRule{
	{"regulatory_compliance", []string{"compliance", "fcra", "regulation", "audit trail"}},
	{"privacy_compliance", []string{"privacy", "pii", "gdpr", "personal data"}},
	{"security_compliance", []string{"security review", "penetration", "owasp", "cve"}},
}

// complexityKeywords each add one point to the complexity score when present.
var complexityKeywords = []string{
	"architecture",
	"design",
	"refactor",
	"migrate",
	"security",
	"compliance",
	"optimization",
	"integration",
}

// regulatedKeywords add one complexity point when any is present.
var regulatedKeywords = []string{"credit", "fcra", "lending", "underwriting"}
