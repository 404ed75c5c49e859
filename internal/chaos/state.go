// Package chaos holds the runtime fault-injection parameters a simulator
// reads on every processing call. Each service instance owns its own State
// so instances can coexist in tests without interference.
package chaos

import "sync"

// State carries the injected latency and error rate. Updates from the chaos
// endpoints are eventually consistent with in-flight requests: a request
// snapshots the state once at the start of its call.
type State struct {
	mu        sync.RWMutex
	latencyMS int
	errorRate float64
}

// NewState returns a State with no injected faults.
func NewState() *State {
	return &State{}
}

// Snapshot returns the current latency and error rate in one read.
func (s *State) Snapshot() (latencyMS int, errorRate float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latencyMS, s.errorRate
}

// SetLatency replaces the injected delay. Negative values are clamped to 0.
func (s *State) SetLatency(ms int) {
	if ms < 0 {
		ms = 0
	}
	s.mu.Lock()
	s.latencyMS = ms
	s.mu.Unlock()
}

// SetErrorRate replaces the injected error rate. Out-of-range values are
// stored as-is; below 0 failure never triggers, above 1 it always does.
func (s *State) SetErrorRate(rate float64) {
	s.mu.Lock()
	s.errorRate = rate
	s.mu.Unlock()
}

// Reset zeroes both controls atomically.
func (s *State) Reset() {
	s.mu.Lock()
	s.latencyMS = 0
	s.errorRate = 0
	s.mu.Unlock()
}
