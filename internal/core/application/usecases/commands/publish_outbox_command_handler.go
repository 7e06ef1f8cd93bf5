package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
	"orders/internal/pkg/metrics"
)

// PublishOutboxCommandHandler hands pending outbox messages to the publisher in order.
// It stops at the first failure so later events of the same order are not published
// ahead of an earlier one; what went out before the failure is marked sent.
type PublishOutboxCommandHandler struct {
	store     ports.OutboxStore
	publisher ports.EventPublisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewPublishOutboxCommandHandler(
	store ports.OutboxStore,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger.With("component", "outbox-relay"),
	}
}

// Handle returns the number of messages published.
func (h PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pending, err := h.store.FetchPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	sent := make([]kernel.UUID, 0, len(pending))
	var publishErr error
	for _, msg := range pending {
		if publishErr = h.publisher.Publish(ctx, msg.Key, msg.Payload); publishErr != nil {
			h.metrics.OutboxPublished.WithLabelValues("failed").Inc()
			h.logger.ErrorContext(ctx, "failed to publish outbox message",
				"event_id", msg.ID.String(), "event_type", msg.EventType, "error", publishErr)
			break
		}
		h.metrics.OutboxPublished.WithLabelValues("sent").Inc()
		sent = append(sent, msg.ID)
	}

	if err = h.store.MarkSent(ctx, sent); err != nil {
		return 0, err
	}

	return len(sent), publishErr
}
