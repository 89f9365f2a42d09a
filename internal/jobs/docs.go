// Package jobs provides scheduled background tasks for the coordination
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic supervision of the delivery and flight read models.
//
// # Available Jobs
//
// 1. FlightWatchdogJob - Runs every minute to flag flights past their scheduled window
// 2. DeliveryAuditJob - Runs every five minutes to summarize the delivery backlog
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with a service principal and the required handlers
//	jobManager := jobs.NewJobManager(servicePrincipal, handlesHandler, flightHandler, deliveriesHandler, logger)
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
// Both jobs only observe the read model; a failed sweep is logged and the
// next tick retries from scratch. Failed job starts will stop any already
// running jobs.
package jobs
