package jobs

import (
	"context"
	"log/slog"
	"time"

	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/flight"
	"starwings/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// FlightWatchdogJob watches for flights that flew past their planned window.
// Runs every minute and warns about every initialized flight whose scheduled
// window has elapsed while either status tracker is still short of a terminal
// state. Reads as the service principal, which holds the default admin role.
type FlightWatchdogJob struct {
	principal kernel.Principal
	handles   queries.GetFlightHandlesQueryHandler
	flights   queries.GetFlightQueryHandler
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewFlightWatchdogJob creates a job that flags overdue flights.
func NewFlightWatchdogJob(
	principal kernel.Principal,
	handlesHandler queries.GetFlightHandlesQueryHandler,
	flightHandler queries.GetFlightQueryHandler,
	logger *slog.Logger,
) *FlightWatchdogJob {
	return &FlightWatchdogJob{
		principal: principal,
		handles:   handlesHandler,
		flights:   flightHandler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "flight_watchdog_job"),
	}
}

// Start begins the watchdog job to run every minute.
func (j *FlightWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.sweep(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Flight watchdog sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Flight watchdog job started (running every minute)")
	return nil
}

// Stop stops the watchdog job.
func (j *FlightWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Flight watchdog job stopped")
}

func (j *FlightWatchdogJob) sweep(ctx context.Context) error {
	handlesQuery, err := queries.NewGetFlightHandlesQuery(j.principal)
	if err != nil {
		return err
	}
	handles, err := j.handles.Handle(ctx, handlesQuery)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, handle := range handles {
		query, err := queries.NewGetFlightQuery(j.principal, handle)
		if err != nil {
			return err
		}
		record, err := j.flights.Handle(ctx, query)
		if err != nil {
			return err
		}

		if !record.Initialized {
			continue
		}

		deadline := record.ScheduledAt.Add(time.Duration(record.DurationMinutes) * time.Minute)
		if now.Before(deadline) {
			continue
		}
		if isTerminal(record.PilotStatus) && isTerminal(record.DroneStatus) {
			continue
		}

		j.logger.WarnContext(ctx, "Flight is past its scheduled window",
			"handle", record.Handle.String(),
			"deliveryId", record.DeliveryID,
			"pilotStatus", record.PilotStatus,
			"droneStatus", record.DroneStatus,
			"overdue", now.Sub(deadline).Round(time.Second).String(),
		)
	}

	return nil
}

func isTerminal(status string) bool {
	switch status {
	case flight.StatusCanceled.String(), flight.StatusAborted.String(), flight.StatusEnded.String():
		return true
	}
	return false
}
