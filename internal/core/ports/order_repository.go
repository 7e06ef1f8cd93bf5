// Package ports defines the contracts between the order core and its adapters.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderReader is the read side of order persistence.
type OrderReader interface {
	// Get returns the order with its items in insertion order.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByUser returns every order of the user, oldest first.
	ListByUser(ctx context.Context, userID kernel.UserID) ([]*order.Order, error)

	// ListByUserSince returns the user's orders created at or after since, oldest first.
	ListByUserSince(ctx context.Context, userID kernel.UserID, since time.Time) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	OrderReader

	// GetForUpdate is Get that also locks the order row until the transaction ends.
	// A concurrent GetForUpdate on the same order waits for that.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Add persists a new order aggregate together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate if it is still at the version it was loaded at.
	// Returns errs.VersionIsInvalidError when another writer got there first.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and all of its items.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, aggregate *order.Order) error
}
