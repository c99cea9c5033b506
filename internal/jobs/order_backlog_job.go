package jobs

import (
	"context"
	"log/slog"

	"inventory/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// BacklogQueryHandler is the slice of the query layer the backlog job needs.
type BacklogQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderBacklogQuery) (queries.OrderBacklogResponse, error)
}

// OrderBacklogJob periodically counts pending purchase orders and pending
// export orders and logs the backlog. It never writes.
type OrderBacklogJob struct {
	handler BacklogQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderBacklogJob creates a job that reports the order backlog every minute.
func NewOrderBacklogJob(handler BacklogQueryHandler, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_backlog_job"),
	}
}

// Start begins the backlog job to run every minute.
func (j *OrderBacklogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderBacklogQuery()

		backlog, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order backlog job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order backlog",
			"pending_orders", backlog.PendingOrders,
			"pending_export_orders", backlog.PendingExportOrders,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog job.
func (j *OrderBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order backlog job stopped")
}
