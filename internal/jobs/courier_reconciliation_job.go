package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierReconciliationJob periodically repairs courier availability flags.
// A crash between claiming an order and completing it can leave a courier
// flagged Busy with no active order; the job flips such couriers back to
// Available so they can claim again.
type CourierReconciliationJob struct {
	handler commands.ReconcileCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierReconciliationJob creates a new reconciliation job running
// once a minute.
func NewCourierReconciliationJob(
	handler commands.ReconcileCouriersCommandHandler, logger *slog.Logger,
) *CourierReconciliationJob {
	return &CourierReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "courier_reconciliation_job"),
	}
}

// Start schedules the reconciliation to run every minute.
func (j *CourierReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Courier reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *CourierReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier reconciliation job stopped")
}
