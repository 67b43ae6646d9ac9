// Package metrics records routing decisions in a bounded in-memory history
// and aggregates them into distribution, cost, and utilization reports. It is
// purely observational: nothing here ever alters a decision already made.
package metrics

import (
	"strings"
	"sync"
	"time"
)

const (
	// DefaultCapacity bounds the history ring buffer.
	DefaultCapacity = 100

	// DefaultWindow is the aggregation window for reports.
	DefaultWindow = 20

	// summaryLimit truncates recorded task text.
	summaryLimit = 80
)

// Entry is one recorded routing decision.
type Entry struct {
	Timestamp     time.Time `json:"timestamp"`
	TaskSummary   string    `json:"task_summary"`
	AgentName     string    `json:"agent_name"`
	AgentKind     string    `json:"agent_kind"`
	Score         float64   `json:"score"`
	EstimatedCost float64   `json:"estimated_cost"`
	Reasoning     string    `json:"reasoning,omitempty"`
}

// CostAnalysis summarizes estimated spend over a report window.
type CostAnalysis struct {
	TotalCost float64 `json:"total_cost"`
	MeanCost  float64 `json:"mean_cost"`
	Trend     string  `json:"trend"` // increasing, decreasing, stable
}

// Recommendation flags an agent whose share of recent decisions is skewed.
type Recommendation struct {
	AgentName string  `json:"agent_name"`
	Kind      string  `json:"kind"` // underutilization, overutilization
	Share     float64 `json:"share"`
}

// Report aggregates the most recent window of history entries.
type Report struct {
	WindowSize        int              `json:"window_size"`
	AgentDistribution map[string]int   `json:"agent_distribution"`
	CostAnalysis      CostAnalysis     `json:"cost_analysis"`
	Recommendations   []Recommendation `json:"recommendations,omitempty"`
}

type outcomeCount struct {
	successes int
	total     int
}

// Tracker owns the bounded decision history. A single mutex serializes
// appends; reads tolerate whatever window they observe.
type Tracker struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	outcomes map[string]outcomeCount
}

// NewTracker creates a tracker with the given capacity. Zero or negative
// capacity takes DefaultCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{
		capacity: capacity,
		outcomes: make(map[string]outcomeCount),
	}
}

// Record appends an entry, evicting the oldest once capacity is reached.
func (t *Tracker) Record(e Entry) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	e.TaskSummary = truncate(e.TaskSummary, summaryLimit)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, e)
	if len(t.entries) > t.capacity {
		t.entries = t.entries[len(t.entries)-t.capacity:]
	}
}

// Len returns the current history length.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Entries returns a copy of the history, oldest first.
func (t *Tracker) Entries() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ReportOutcome registers an explicit success or failure signal for an
// agent. Without outcome reports an agent has no success rate and scoring
// applies no historical bonus.
func (t *Tracker) ReportOutcome(agentName string, success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.outcomes[agentName]
	c.total++
	if success {
		c.successes++
	}
	t.outcomes[agentName] = c
}

// SuccessRates returns the rolling success rate per agent. Agents with no
// reported outcomes are absent from the map.
func (t *Tracker) SuccessRates() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	rates := make(map[string]float64, len(t.outcomes))
	for name, c := range t.outcomes {
		if c.total > 0 {
			rates[name] = float64(c.successes) / float64(c.total)
		}
	}
	return rates
}

// Report aggregates the most recent windowSize entries. Zero or negative
// windowSize takes DefaultWindow.
func (t *Tracker) Report(windowSize int) Report {
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}

	t.mu.Lock()
	window := t.entries
	if len(window) > windowSize {
		window = window[len(window)-windowSize:]
	}
	entries := make([]Entry, len(window))
	copy(entries, window)
	t.mu.Unlock()

	report := Report{
		WindowSize:        len(entries),
		AgentDistribution: make(map[string]int),
	}
	if len(entries) == 0 {
		report.CostAnalysis.Trend = "stable"
		return report
	}

	var total float64
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		report.AgentDistribution[e.AgentKind]++
		total += e.EstimatedCost
		if _, seen := counts[e.AgentName]; !seen {
			order = append(order, e.AgentName)
		}
		counts[e.AgentName]++
	}

	report.CostAnalysis.TotalCost = total
	report.CostAnalysis.MeanCost = total / float64(len(entries))
	report.CostAnalysis.Trend = costTrend(entries)
	report.Recommendations = recommendations(order, counts, len(entries))
	return report
}

func costTrend(entries []Entry) string {
	first := entries[0].EstimatedCost
	last := entries[len(entries)-1].EstimatedCost
	switch {
	case last > first:
		return "increasing"
	case last < first:
		return "decreasing"
	default:
		return "stable"
	}
}

func recommendations(order []string, counts map[string]int, window int) []Recommendation {
	var recs []Recommendation
	for _, name := range order {
		share := float64(counts[name]) / float64(window)
		switch {
		case share < 0.05 && window > 10:
			recs = append(recs, Recommendation{AgentName: name, Kind: "underutilization", Share: share})
		case share > 0.6:
			recs = append(recs, Recommendation{AgentName: name, Kind: "overutilization", Share: share})
		}
	}
	return recs
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
