package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// PrometheusRecorder exports counters through a Prometheus registry.
type PrometheusRecorder struct {
	registry         *prometheus.Registry
	keysIssued       *prometheus.CounterVec
	authDecisions    *prometheus.CounterVec
	logAppends       *prometheus.CounterVec
	backendFallbacks *prometheus.CounterVec
}

// NewPrometheus creates a recorder with its own registry, including the
// standard Go runtime and process collectors.
func NewPrometheus() *PrometheusRecorder {
	reg := prometheus.NewRegistry()

	p := &PrometheusRecorder{
		registry: reg,
		keysIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvgate_api_keys_issued_total",
			Help: "Number of API keys issued, by role",
		}, []string{"role"}),
		authDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvgate_auth_decisions_total",
			Help: "Authorization decisions, by result",
		}, []string{"result"}),
		logAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvgate_request_log_appends_total",
			Help: "Request log appends, by status",
		}, []string{"status"}),
		backendFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvgate_backend_fallbacks_total",
			Help: "Backend failures absorbed by a degraded default, by operation",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.keysIssued,
		p.authDecisions,
		p.logAppends,
		p.backendFallbacks,
	)

	return p
}

// Registry returns the registry backing this recorder.
// HTTP middleware registers its collectors here too.
func (p *PrometheusRecorder) Registry() *prometheus.Registry {
	return p.registry
}

// IncKeyIssued increments the issued-key counter for role.
func (p *PrometheusRecorder) IncKeyIssued(role string) {
	p.keysIssued.WithLabelValues(role).Inc()
}

// IncAuthDecision increments the auth decision counter.
func (p *PrometheusRecorder) IncAuthDecision(result string) {
	p.authDecisions.WithLabelValues(result).Inc()
}

// IncRequestLogAppend increments the request log append counter.
func (p *PrometheusRecorder) IncRequestLogAppend(status string) {
	p.logAppends.WithLabelValues(status).Inc()
}

// IncBackendFallback increments the fallback counter for operation.
func (p *PrometheusRecorder) IncBackendFallback(operation string) {
	p.backendFallbacks.WithLabelValues(operation).Inc()
}
