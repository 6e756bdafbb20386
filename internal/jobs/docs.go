// Package jobs provides scheduled background tasks for the marketplace service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LedgerReconciliationJob - Reports orders whose current status has no
// traceability record with a matching action
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(discrepanciesHandler, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// Reconciliation defaults to "0 * * * * *", once a minute.
//
// # Error Handling
//
// - Each discrepancy is logged at warn level with order id, product id and status
// - A failed query is logged at error level and retried on the next tick
// - A job with an invalid schedule fails StartAll
package jobs
