package metrics_test

import (
	"errors"
	"testing"
	"time"

	"embroidery/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewJobMetrics(reg)

	m.Observe("reset_token_cleanup", 10*time.Millisecond, nil)
	m.Observe("reset_token_cleanup", 10*time.Millisecond, errors.New("db down"))
	m.Observe("", time.Millisecond, nil)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestLedgerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewLedgerMetrics(reg)

	m.CountOperation("confirm_returns", "")
	m.CountOperation("confirm_returns", "CONFLICT")
	m.SetAudit(2, 1)

	count, err := testutil.GatherAndCount(reg,
		"embroidery_ledger_operations_total",
		"embroidery_ledger_chain_violations",
		"embroidery_ledger_paid_unconfirmed_returns")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNilRecordersAreSafe(t *testing.T) {
	var jm *metrics.JobMetrics
	var lm *metrics.LedgerMetrics
	assert.NotPanics(t, func() {
		jm.Observe("x", time.Second, nil)
		lm.CountOperation("x", "")
		lm.SetAudit(1, 1)
		metrics.NewJobMetrics(nil).Observe("x", time.Second, nil)
		metrics.NewLedgerMetrics(nil).SetAudit(0, 0)
	})
}
