package jobs

import (
	"context"

	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PendingOrdersJob periodically reports the pending order backlog.
// It reuses the read side's listing query, so the job sees exactly what the
// API returns for GET /orders?status=pending.
type PendingOrdersJob struct {
	handler queries.GetOrdersQueryHandler
	cron    *cron.Cron
	logger  zerolog.Logger
}

// NewPendingOrdersJob creates a backlog report job running once a minute.
func NewPendingOrdersJob(handler queries.GetOrdersQueryHandler, logger zerolog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With().Str("component", "pending_orders_job").Logger(),
	}
}

// Start begins the backlog report job.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetOrdersByStatusQuery(order.Pending)
		if queryErr != nil {
			j.logger.Error().Err(queryErr).Msg("pending orders job failed to build query")
			return
		}

		pending, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.Error().Err(handleErr).Msg("pending orders job failed")
			return
		}

		j.logger.Info().Int("pending_orders", len(pending)).Msg("pending order backlog")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Msg("pending orders job started (running every minute)")
	return nil
}

// Stop stops the backlog report job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.Info().Msg("pending orders job stopped")
}
