package jobs

import (
	"context"
	"errors"
	"fmt"

	"embroidery/internal/core/application/usecases/queries"
	"embroidery/internal/pkg/logger"
	"embroidery/internal/pkg/metrics"
)

const LedgerAuditJobName = "ledger_audit"

// ErrLedgerInconsistent is reported when the audit finds broken counters.
var ErrLedgerInconsistent = errors.New("ledger audit found inconsistencies")

type LedgerAuditor interface {
	Handle(ctx context.Context, q queries.LedgerAuditQuery) (queries.LedgerAuditResponse, error)
}

// NewLedgerAuditJob recounts ledger invariants and publishes them as gauges.
func NewLedgerAuditJob(
	spec string,
	auditor LedgerAuditor,
	ledger *metrics.LedgerMetrics,
	log *logger.Logger,
	m *metrics.JobMetrics,
) Job {
	return newScheduledJob(LedgerAuditJobName, spec, func(ctx context.Context) error {
		res, err := auditor.Handle(ctx, queries.NewLedgerAuditQuery())
		if err != nil {
			return err
		}
		ledger.SetAudit(res.ChainViolations, res.PaidUnconfirmed)
		if res.Clean() {
			return nil
		}
		return fmt.Errorf("%w: chain_violations=%d paid_unconfirmed=%d over_delivered_orders=%d",
			ErrLedgerInconsistent, res.ChainViolations, res.PaidUnconfirmed, res.OverDeliveredOrders)
	}, log, m)
}
