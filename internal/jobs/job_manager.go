package jobs

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop(ctx context.Context)
	RunOnce(ctx context.Context) error
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs []Job
}

func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts every job. When any fails to start, the ones already
// running are stopped and all start errors are returned together.
func (jm *JobManager) StartAll() error {
	var err error
	started := make([]Job, 0, len(jm.jobs))
	for i, job := range jm.jobs {
		if startErr := job.Start(); startErr != nil {
			err = multierr.Append(err, fmt.Errorf("job %d: %w", i, startErr))
			continue
		}
		started = append(started, job)
	}
	if err != nil {
		for _, job := range started {
			job.Stop(context.Background())
		}
		return err
	}
	return nil
}

// StopAll stops all jobs, waiting for running executions until ctx is done.
func (jm *JobManager) StopAll(ctx context.Context) {
	for _, job := range jm.jobs {
		job.Stop(ctx)
	}
}

// RunAll executes every job once and reports every failure.
func (jm *JobManager) RunAll(ctx context.Context) error {
	var err error
	for _, job := range jm.jobs {
		err = multierr.Append(err, job.RunOnce(ctx))
	}
	return err
}
