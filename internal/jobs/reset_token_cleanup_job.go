package jobs

import (
	"context"
	"time"

	"embroidery/internal/pkg/logger"
	"embroidery/internal/pkg/metrics"
)

const ResetTokenCleanupJobName = "reset_token_cleanup"

type ResetTokenPurger interface {
	Handle(ctx context.Context, now time.Time) (int64, error)
}

// NewResetTokenCleanupJob deletes password reset tokens past their lifetime.
func NewResetTokenCleanupJob(
	spec string,
	purger ResetTokenPurger,
	clock func() time.Time,
	log *logger.Logger,
	m *metrics.JobMetrics,
) Job {
	if clock == nil {
		clock = time.Now
	}
	var job *scheduledJob
	job = newScheduledJob(ResetTokenCleanupJobName, spec, func(ctx context.Context) error {
		deleted, err := purger.Handle(ctx, clock())
		if err != nil {
			return err
		}
		if deleted > 0 {
			job.log.Info(job.log.WithField(ctx, "deleted", deleted), "expired reset tokens removed")
		}
		return nil
	}, log, m)
	return job
}
