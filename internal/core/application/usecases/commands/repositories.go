// Package commands contains the operations that change orders.
// Every command is built by its constructor, validated by its handler, and executed inside
// a unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a new order unit of work per command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
