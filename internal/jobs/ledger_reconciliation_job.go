package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultReconciliationSchedule runs at second zero of every minute.
const DefaultReconciliationSchedule = "0 * * * * *"

type LedgerDiscrepanciesHandler interface {
	Handle(ctx context.Context, query queries.GetLedgerDiscrepanciesQuery) ([]queries.GetLedgerDiscrepanciesQueryResponse, error)
}

// LedgerReconciliationJob periodically reports orders whose current status
// has no matching provenance record. It only reads.
type LedgerReconciliationJob struct {
	handler  LedgerDiscrepanciesHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLedgerReconciliationJob creates the job. schedule is a six-field cron
// expression with seconds; an empty schedule means DefaultReconciliationSchedule.
func NewLedgerReconciliationJob(
	handler LedgerDiscrepanciesHandler,
	schedule string,
	logger *slog.Logger,
) *LedgerReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconciliationSchedule
	}
	return &LedgerReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ledger_reconciliation_job"),
	}
}

// Start schedules the job. It fails on an invalid schedule.
func (j *LedgerReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.ErrorContext(context.Background(), "Ledger reconciliation failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ledger reconciliation job started", "schedule", j.schedule)
	return nil
}

// Run performs one reconciliation pass and returns the number of discrepancies found.
func (j *LedgerReconciliationJob) Run(ctx context.Context) (int, error) {
	discrepancies, err := j.handler.Handle(ctx, queries.NewGetLedgerDiscrepanciesQuery())
	if err != nil {
		return 0, err
	}

	for _, d := range discrepancies {
		j.logger.WarnContext(ctx, "Order status has no traceability record",
			"order_id", d.OrderID.String(),
			"product_id", d.ProductID.String(),
			"status", d.Status.String(),
		)
	}
	return len(discrepancies), nil
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *LedgerReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Ledger reconciliation job stopped")
}
