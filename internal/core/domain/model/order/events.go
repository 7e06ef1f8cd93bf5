package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"
)

type EventType string

const (
	EventCreated        EventType = "order.created"
	EventItemUpserted   EventType = "order.item_upserted"
	EventAddressChanged EventType = "order.address_changed"
	EventCompleted      EventType = "order.completed"
	EventCancelled      EventType = "order.cancelled"
)

// DomainEvent is a fact recorded by the aggregate. Events are collected by the unit of work
// and written to the outbox in the same transaction as the change itself.
type DomainEvent struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	UserID     kernel.UserID
	OccurredAt time.Time
	Payload    map[string]any
}
