package jobs

import (
	"context"
	"log/slog"

	"catering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelayJob periodically forwards pending status-change events to the broker.
type OutboxRelayJob struct {
	handler   commands.RelayOutboxCommandHandler
	batchSize int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(
	handler commands.RelayOutboxCommandHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), cmd) })
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", j.schedule)
	return nil
}

func (j *OutboxRelayJob) run(ctx context.Context, cmd commands.RelayOutboxCommand) {
	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", published, "error", err)
		return
	}
	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages published", "count", published)
	}
}

func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
