package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle: writes become
// visible only on Commit, and every non-success exit path must Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, or to the base connection if none is active.
	OrderRepository() OrderRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction, or to the base connection if none is active.
	UserRepository() UserRepository

	// ProductRepository returns a ProductRepository bound to the current
	// transaction, or to the base connection if none is active.
	ProductRepository() ProductRepository
}
