package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

type namedJob struct {
	name string
	job
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob *OutboxRelayJob
	stockAlertJob  *StockAlertJob
}

func NewJobManager(outboxRelayJob *OutboxRelayJob, stockAlertJob *StockAlertJob) *JobManager {
	return &JobManager{
		outboxRelayJob: outboxRelayJob,
		stockAlertJob:  stockAlertJob,
	}
}

// StartAll starts the configured jobs. A nil job is skipped. If one fails to
// start, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	started := make([]job, 0, 2)
	for _, j := range jm.jobs() {
		if err := j.Start(); err != nil {
			for _, running := range started {
				running.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", j.name, err)
		}
		started = append(started, j)
	}
	return nil
}

// StopAll stops all scheduled jobs and waits for running executions.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs() {
		j.Stop()
	}
}

func (jm *JobManager) jobs() []namedJob {
	jobs := make([]namedJob, 0, 2)
	if jm.outboxRelayJob != nil {
		jobs = append(jobs, namedJob{name: "outbox relay", job: jm.outboxRelayJob})
	}
	if jm.stockAlertJob != nil {
		jobs = append(jobs, namedJob{name: "stock alert", job: jm.stockAlertJob})
	}
	return jobs
}
