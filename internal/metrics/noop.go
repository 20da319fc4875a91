package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncKeyIssued is a no-op.
func (n *NoopRecorder) IncKeyIssued(role string) {}

// IncAuthDecision is a no-op.
func (n *NoopRecorder) IncAuthDecision(result string) {}

// IncRequestLogAppend is a no-op.
func (n *NoopRecorder) IncRequestLogAppend(status string) {}

// IncBackendFallback is a no-op.
func (n *NoopRecorder) IncBackendFallback(operation string) {}
