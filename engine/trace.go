package engine

import (
	"sync"

	"github.com/cwbudde/algo-reactive/graph"
)

// TraceStore keeps each node's last resolved inputs and computed outputs for
// an external graph-inspection UI. The evaluator only writes into the store;
// nothing in the engine reads it back.
type TraceStore struct {
	mu     sync.RWMutex
	traces map[traceKey]graph.NodeTrace
}

type traceKey struct {
	network string
	nodeID  string
}

// NewTraceStore returns an empty store.
func NewTraceStore() *TraceStore {
	return &TraceStore{traces: make(map[traceKey]graph.NodeTrace)}
}

// Observer returns the write-only observer to install on an evaluator.
func (s *TraceStore) Observer() graph.Observer {
	return func(t graph.NodeTrace) {
		s.mu.Lock()
		s.traces[traceKey{network: t.Network, nodeID: t.NodeID}] = t
		s.mu.Unlock()
	}
}

// Latest returns a node's most recent trace.
func (s *TraceStore) Latest(network, nodeID string) (graph.NodeTrace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.traces[traceKey{network: network, nodeID: nodeID}]
	return t, ok
}

// Snapshot returns a copy of every stored trace.
func (s *TraceStore) Snapshot() []graph.NodeTrace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]graph.NodeTrace, 0, len(s.traces))
	for _, t := range s.traces {
		out = append(out, t)
	}
	return out
}
