package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfeet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PickupReportJob logs the day's pickup counts per delivery man once the
// operating window has closed, flagging anyone who exhausted the daily quota.
type PickupReportJob struct {
	handler queries.GetPickupReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPickupReportJob creates a job that reports pickup counts every evening.
func NewPickupReportJob(handler queries.GetPickupReportQueryHandler, logger *slog.Logger) *PickupReportJob {
	return &PickupReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pickup_report_job"),
	}
}

// Start begins the report job, running daily at 19:00 local time.
func (j *PickupReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 19 * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetPickupReportQuery(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup report job failed", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pickup report job failed", "error", err)
			return
		}

		for _, row := range report {
			if row.QuotaReached {
				j.logger.WarnContext(ctx, "Daily pickup quota reached",
					"delivery_man_id", row.DeliveryManID.String(),
					"delivery_man_name", row.Name,
					"pickups", row.Pickups,
				)
				continue
			}
			j.logger.InfoContext(ctx, "Daily pickups",
				"delivery_man_id", row.DeliveryManID.String(),
				"delivery_man_name", row.Name,
				"pickups", row.Pickups,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pickup report job started (running daily at 19:00)")
	return nil
}

// Stop stops the report job.
func (j *PickupReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pickup report job stopped")
}
