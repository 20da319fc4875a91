package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	p := NewPrometheus()

	p.IncKeyIssued("admin")
	p.IncKeyIssued("admin")
	p.IncAuthDecision(AuthRejected)
	p.IncRequestLogAppend(AppendDropped)
	p.IncBackendFallback("exists")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.keysIssued.WithLabelValues("admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.authDecisions.WithLabelValues(AuthRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.logAppends.WithLabelValues(AppendDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.backendFallbacks.WithLabelValues("exists")))
}

func TestPrometheusRecorder_Gather(t *testing.T) {
	p := NewPrometheus()
	p.IncAuthDecision(AuthAdmitted)

	families, err := p.Registry().Gather()
	assert.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["kvgate_auth_decisions_total"])
	assert.True(t, names["go_goroutines"])
}

func TestInMemoryRecorder_Snapshot(t *testing.T) {
	m := NewInMemory()

	m.IncAuthDecision(AuthAdmitted)
	m.IncAuthDecision(AuthAdmitted)
	m.IncAuthDecision(AuthFailOpen)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.AuthDecisions[AuthAdmitted])
	assert.Equal(t, uint64(1), snap.AuthDecisions[AuthFailOpen])

	// Snapshot is a copy.
	snap.AuthDecisions[AuthAdmitted] = 100
	assert.Equal(t, uint64(2), m.Snapshot().AuthDecisions[AuthAdmitted])
}
