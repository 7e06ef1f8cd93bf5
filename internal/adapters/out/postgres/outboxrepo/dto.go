// Package outboxrepo stores order events in the outbox table until the relay publishes them.
package outboxrepo

import (
	"encoding/json"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxDTO is a row of the outbox table. SentAt stays NULL until the event is published.
type OutboxDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	SentAt      *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

// Envelope is the JSON document published for every order event.
type Envelope struct {
	EventID    string         `json:"eventId"`
	Type       string         `json:"type"`
	OrderID    string         `json:"orderId"`
	UserID     int64          `json:"userId"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

func fromDomain(event order.DomainEvent) (OutboxDTO, error) {
	payload := event.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	body, err := json.Marshal(Envelope{
		EventID:    event.ID.String(),
		Type:       string(event.Type),
		OrderID:    event.OrderID.String(),
		UserID:     event.UserID.Int64(),
		OccurredAt: event.OccurredAt.UTC(),
		Payload:    payload,
	})
	if err != nil {
		return OutboxDTO{}, err
	}

	return OutboxDTO{
		ID:          event.ID.Bytes(),
		EventType:   string(event.Type),
		AggregateID: event.OrderID.Bytes(),
		Payload:     string(body),
		OccurredAt:  event.OccurredAt.UTC(),
	}, nil
}

func toMessage(dto OutboxDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:         id,
		EventType:  dto.EventType,
		Key:        dto.AggregateID.String(),
		Payload:    []byte(dto.Payload),
		OccurredAt: dto.OccurredAt,
	}, nil
}
