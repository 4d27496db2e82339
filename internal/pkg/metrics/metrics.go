// Package metrics holds the Prometheus collectors exported on /metrics.
// Every recorder is nil-safe so tests and tools can pass nil.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// JobMetrics records cron job executions.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "embroidery_job_duration_seconds",
		Help:    "Duration of scheduled jobs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "embroidery_job_success_total",
		Help: "Successful scheduled job runs.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "embroidery_job_failure_total",
		Help: "Failed scheduled job runs.",
	}, []string{"job"})
	reg.MustRegister(duration, success, failure)
	return &JobMetrics{duration: duration, success: success, failure: failure}
}

func (m *JobMetrics) Observe(job string, d time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	job = normalizeLabel(job)
	m.duration.WithLabelValues(job).Observe(d.Seconds())
	if err != nil {
		m.failure.WithLabelValues(job).Inc()
		return
	}
	m.success.WithLabelValues(job).Inc()
}

// LedgerMetrics counts ledger operations and exposes audit findings.
type LedgerMetrics struct {
	operations      *prometheus.CounterVec
	chainViolations prometheus.Gauge
	paidUnconfirmed prometheus.Gauge
}

func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "embroidery_ledger_operations_total",
		Help: "Ledger operations by name and outcome code.",
	}, []string{"operation", "outcome"})
	chain := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "embroidery_ledger_chain_violations",
		Help: "Assignments whose delivered/returned/assigned counters are out of order.",
	})
	paid := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "embroidery_ledger_paid_unconfirmed_returns",
		Help: "Returns flagged paid without being confirmed.",
	})
	reg.MustRegister(operations, chain, paid)
	return &LedgerMetrics{operations: operations, chainViolations: chain, paidUnconfirmed: paid}
}

// CountOperation records one ledger operation. An empty outcome means success.
func (m *LedgerMetrics) CountOperation(operation, outcome string) {
	if m == nil || m.operations == nil {
		return
	}
	if outcome == "" {
		outcome = "ok"
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *LedgerMetrics) SetAudit(chainViolations, paidUnconfirmed int64) {
	if m == nil || m.chainViolations == nil {
		return
	}
	m.chainViolations.Set(float64(chainViolations))
	m.paidUnconfirmed.Set(float64(paidUnconfirmed))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
