package observability

import (
	"sync"
)

// Metrics provides basic in-memory counters for page views and actions.
type Metrics struct {
	mu          sync.Mutex
	pageViews   map[string]int64
	actionCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		pageViews:   make(map[string]int64),
		actionCount: make(map[string]int64),
	}
}

// RecordPageView increments the view counter for a page.
func (m *Metrics) RecordPageView(page string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageViews[page]++
}

// RecordAction increments counters for a performed action and its outcome.
func (m *Metrics) RecordAction(action string, success bool) {
	if m == nil {
		return
	}
	key := action + "|ok"
	if !success {
		key = action + "|failed"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionCount[key]++
}

// PageViews returns a snapshot of per-page view counts.
func (m *Metrics) PageViews() map[string]int64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make(map[string]int64, len(m.pageViews))
	for key, count := range m.pageViews {
		snapshot[key] = count
	}
	return snapshot
}
