// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the notification pipeline.
//
// # Available Jobs
//
// 1. QueueRedeliveryJob - Runs every ten seconds to re-enqueue notifications
// parked after a failed requeue attempt.
//
// 2. PickupReportJob - Runs daily after the operating window closes to log
// each delivery man's pickup count, flagging exhausted daily quotas.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(queue, pickupReportHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The redelivery job re-parks notifications that still do not fit their queue
// - Failed job starts leave no jobs running
package jobs
