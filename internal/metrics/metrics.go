// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Auth decision labels.
const (
	AuthAdmitted = "admitted"
	AuthRejected = "rejected"
	AuthFailOpen = "fail_open"
)

// Request log append labels.
const (
	AppendSuccess = "success"
	AppendDropped = "dropped"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus or keep them in memory.
type Recorder interface {
	// Credential metrics
	IncKeyIssued(role string)
	IncAuthDecision(result string)

	// Request log metrics
	IncRequestLogAppend(status string)

	// Degraded-mode metrics: a backend call failed and a default was used.
	IncBackendFallback(operation string)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
