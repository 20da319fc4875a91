package metrics

import "sync"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	KeysIssued       map[string]uint64
	AuthDecisions    map[string]uint64
	LogAppends       map[string]uint64
	BackendFallbacks map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu               sync.Mutex
	keysIssued       map[string]uint64
	authDecisions    map[string]uint64
	logAppends       map[string]uint64
	backendFallbacks map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		keysIssued:       make(map[string]uint64),
		authDecisions:    make(map[string]uint64),
		logAppends:       make(map[string]uint64),
		backendFallbacks: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		KeysIssued:       copyCounts(m.keysIssued),
		AuthDecisions:    copyCounts(m.authDecisions),
		LogAppends:       copyCounts(m.logAppends),
		BackendFallbacks: copyCounts(m.backendFallbacks),
	}
}

// IncKeyIssued increments the issued-key counter for role.
func (m *InMemoryRecorder) IncKeyIssued(role string) {
	m.inc(m.keysIssued, role)
}

// IncAuthDecision increments the auth decision counter.
func (m *InMemoryRecorder) IncAuthDecision(result string) {
	m.inc(m.authDecisions, result)
}

// IncRequestLogAppend increments the request log append counter.
func (m *InMemoryRecorder) IncRequestLogAppend(status string) {
	m.inc(m.logAppends, status)
}

// IncBackendFallback increments the fallback counter for operation.
func (m *InMemoryRecorder) IncBackendFallback(operation string) {
	m.inc(m.backendFallbacks, operation)
}

func (m *InMemoryRecorder) inc(counts map[string]uint64, label string) {
	m.mu.Lock()
	counts[label]++
	m.mu.Unlock()
}

func copyCounts(src map[string]uint64) map[string]uint64 {
	dst := make(map[string]uint64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
