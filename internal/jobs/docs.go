// Package jobs provides scheduled background tasks for the ledger service.
//
// Jobs are cron-scheduled with github.com/robfig/cron/v3. Each run gets a
// timeout, is timed into the job metrics and logs its failure.
//
// # Available Jobs
//
// 1. Reset token cleanup deletes password reset tokens older than their lifetime.
// 2. Ledger audit counts assignments whose counters break the
// delivered <= returned <= assigned chain and returns flagged paid but not
// confirmed. The counts are published as gauges; a non-zero count fails the run.
//
// # Usage
//
//	manager := jobs.NewJobManager(
//		jobs.NewResetTokenCleanupJob("@every 15m", purger, time.Now, log, jobMetrics),
//		jobs.NewLedgerAuditJob("@hourly", auditor, ledgerMetrics, log, jobMetrics),
//	)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll(ctx)
//
// Specs use the standard five field syntax or descriptors such as @hourly.
package jobs
