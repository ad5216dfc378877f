package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters: requests by path/method/status,
// errors by code, and workflow decisions by kind and outcome.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	requestTotal  map[string]time.Duration
	errorCount    map[string]int64
	decisionCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		requestTotal:  make(map[string]time.Duration),
		errorCount:    make(map[string]int64),
		decisionCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests and accumulates latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.requestTotal[key] += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordDecision counts workflow outcomes, e.g. ("leave", "approved") or
// ("swap", "rejected").
func (m *Metrics) RecordDecision(kind, outcome string) {
	if m == nil {
		return
	}
	key := kind + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisionCount[key]++
}

// DecisionCount reads a single decision counter.
func (m *Metrics) DecisionCount(kind, outcome string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decisionCount[kind+"|"+outcome]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
