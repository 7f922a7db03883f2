package jobs

import (
	"fmt"
	"log/slog"

	"fastfeet/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueRedeliveryJob *QueueRedeliveryJob
	pickupReportJob    *PickupReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	queue parkedRedeliverer,
	pickupReportHandler queries.GetPickupReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueRedeliveryJob: NewQueueRedeliveryJob(queue, logger),
		pickupReportJob:    NewPickupReportJob(pickupReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueRedeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue redelivery job: %w", err)
	}

	if err := jm.pickupReportJob.Start(); err != nil {
		jm.queueRedeliveryJob.Stop()
		return fmt.Errorf("failed to start pickup report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pickupReportJob.Stop()
	jm.queueRedeliveryJob.Stop()
}
