package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// OutboxMessage is an order event waiting to be published.
type OutboxMessage struct {
	ID         kernel.UUID
	EventType  string
	Key        string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxStore gives the relay access to pending messages.
type OutboxStore interface {
	// FetchPending returns at most limit unsent messages, oldest first.
	FetchPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent flags the given messages as published.
	MarkSent(ctx context.Context, ids []kernel.UUID) error
}

// EventPublisher delivers a serialized event to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
