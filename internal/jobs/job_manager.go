package jobs

import (
	"fmt"
	"log/slog"

	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	flightWatchdogJob *FlightWatchdogJob
	deliveryAuditJob  *DeliveryAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution. The
// principal identifies the jobs to the read side; it must hold the default
// admin role.
func NewJobManager(
	principal kernel.Principal,
	handlesHandler queries.GetFlightHandlesQueryHandler,
	flightHandler queries.GetFlightQueryHandler,
	deliveriesHandler queries.GetAllDeliveriesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		flightWatchdogJob: NewFlightWatchdogJob(principal, handlesHandler, flightHandler, logger),
		deliveryAuditJob:  NewDeliveryAuditJob(principal, deliveriesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.flightWatchdogJob.Start(); err != nil {
		return fmt.Errorf("failed to start flight watchdog job: %w", err)
	}

	if err := jm.deliveryAuditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.flightWatchdogJob.Stop()
		return fmt.Errorf("failed to start delivery audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryAuditJob.Stop()
	jm.flightWatchdogJob.Stop()
}
