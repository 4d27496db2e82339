package jobs

import (
	"context"
	"fmt"
	"time"

	"embroidery/internal/pkg/logger"
	"embroidery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 2 * time.Minute

// scheduledJob runs one task on its own cron schedule. Overlapping runs are
// skipped and panics are recovered.
type scheduledJob struct {
	name    string
	spec    string
	run     func(ctx context.Context) error
	cron    *cron.Cron
	log     *logger.Logger
	metrics *metrics.JobMetrics
	timeout time.Duration
}

func newScheduledJob(
	name, spec string,
	run func(ctx context.Context) error,
	log *logger.Logger,
	m *metrics.JobMetrics,
) *scheduledJob {
	if log == nil {
		log = logger.Nop()
	}
	return &scheduledJob{
		name:    name,
		spec:    spec,
		run:     run,
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:     log.Component(name),
		metrics: m,
		timeout: defaultRunTimeout,
	}
}

func (j *scheduledJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %s %q: %w", j.name, j.spec, err)
	}
	j.cron.Start()
	j.log.Info(j.log.WithField(context.Background(), "schedule", j.spec), "job started")
	return nil
}

// Stop waits for a running execution until ctx is done.
func (j *scheduledJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.log.Info(context.Background(), "job stopped")
}

// RunOnce executes the task immediately, outside the schedule.
func (j *scheduledJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	start := time.Now()
	err := j.run(ctx)
	j.metrics.Observe(j.name, time.Since(start), err)
	if err != nil {
		j.log.Error(ctx, "job run failed", err)
	}
	return err
}
