package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Domain events of aggregates touched through its repositories are written to the
// outbox on Commit, in the same transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction started by Begin.
	OrderRepository() OrderRepository
}
