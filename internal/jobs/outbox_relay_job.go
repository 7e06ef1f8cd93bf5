package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const outboxRelaySchedule = "@every 5s"

type outboxPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending outbox events on a fixed schedule.
type OutboxRelayJob struct {
	handler   outboxPublisher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler outboxPublisher, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(outboxRelaySchedule, func() {
		j.run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started", "schedule", outboxRelaySchedule)
	return nil
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run(ctx context.Context) {
	cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	published, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "published", published, "error", err)
		return
	}

	if published > 0 {
		j.logger.DebugContext(ctx, "Outbox events published", "count", published)
	}
}
