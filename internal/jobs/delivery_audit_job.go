package jobs

import (
	"context"
	"log/slog"

	"starwings/internal/core/application/usecases/queries"
	"starwings/internal/core/domain/model/delivery"
	"starwings/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// DeliveryAuditJob periodically summarizes the delivery backlog. Runs every
// five minutes and logs how many deliveries sit in each status, so operators
// can spot parcels that stopped moving without querying the API. Reads as the
// service principal, which holds the default admin role.
type DeliveryAuditJob struct {
	principal  kernel.Principal
	deliveries queries.GetAllDeliveriesQueryHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewDeliveryAuditJob creates a job that logs the delivery backlog.
func NewDeliveryAuditJob(
	principal kernel.Principal,
	deliveriesHandler queries.GetAllDeliveriesQueryHandler,
	logger *slog.Logger,
) *DeliveryAuditJob {
	return &DeliveryAuditJob{
		principal:  principal,
		deliveries: deliveriesHandler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "delivery_audit_job"),
	}
}

// Start begins the audit job to run every five minutes.
func (j *DeliveryAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		if err := j.audit(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery audit failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery audit job started (running every five minutes)")
	return nil
}

// Stop stops the audit job.
func (j *DeliveryAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery audit job stopped")
}

func (j *DeliveryAuditJob) audit(ctx context.Context) error {
	query, err := queries.NewGetAllDeliveriesQuery(j.principal)
	if err != nil {
		return err
	}
	records, err := j.deliveries.Handle(ctx, query)
	if err != nil {
		return err
	}

	perStatus := make(map[string]int)
	open := 0
	for _, record := range records {
		perStatus[record.Status]++
		status := delivery.Status(record.StatusCode)
		if status != delivery.Delivered && status != delivery.Canceled {
			open++
		}
	}

	j.logger.InfoContext(ctx, "Delivery backlog",
		"total", len(records),
		"open", open,
		"perStatus", perStatus,
	)
	return nil
}
