package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// parkedRedeliverer is the queue-side contract of the redelivery sweep.
type parkedRedeliverer interface {
	RedeliverParked(ctx context.Context) int
}

// QueueRedeliveryJob periodically re-enqueues notifications that were parked
// after a failed requeue attempt, so a transient full buffer never loses a job.
type QueueRedeliveryJob struct {
	queue  parkedRedeliverer
	cron   *cron.Cron
	logger *slog.Logger
}

// NewQueueRedeliveryJob creates a job that sweeps the parked notifications
// every ten seconds.
func NewQueueRedeliveryJob(queue parkedRedeliverer, logger *slog.Logger) *QueueRedeliveryJob {
	return &QueueRedeliveryJob{
		queue:  queue,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "queue_redelivery_job"),
	}
}

// Start begins the redelivery sweep.
func (j *QueueRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()

		if redelivered := j.queue.RedeliverParked(ctx); redelivered > 0 {
			j.logger.InfoContext(ctx, "Parked notifications redelivered", "count", redelivered)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue redelivery job started (running every ten seconds)")
	return nil
}

// Stop stops the redelivery sweep.
func (j *QueueRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue redelivery job stopped")
}
