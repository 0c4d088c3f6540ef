package jobs

import (
	"context"
	"log/slog"
	"time"

	"catering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StockAlertJob logs stock items that are running low or about to expire.
type StockAlertJob struct {
	handler  queries.GetStockAlertsQueryHandler
	horizon  time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStockAlertJob(
	handler queries.GetStockAlertsQueryHandler,
	schedule string,
	horizon time.Duration,
	logger *slog.Logger,
) *StockAlertJob {
	return &StockAlertJob{
		handler:  handler,
		horizon:  horizon,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stock_alert_job"),
	}
}

func (j *StockAlertJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock alert job started", "schedule", j.schedule)
	return nil
}

func (j *StockAlertJob) run(ctx context.Context) {
	query, err := queries.NewGetStockAlertsQuery(j.now(), j.horizon)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock alert query rejected", "error", err)
		return
	}

	alerts, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stock alert job failed", "error", err)
		return
	}

	for _, alert := range alerts {
		j.logger.WarnContext(ctx, "Stock alert",
			"stock_item_id", alert.ID,
			"name", alert.Name,
			"quantity", alert.Quantity.StringFixed(2),
			"minimum_quantity", alert.MinimumQuantity.StringFixed(2),
			"below_minimum", alert.BelowMinimum,
			"expiring", alert.Expiring,
		)
	}
}

func (j *StockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stock alert job stopped")
}
