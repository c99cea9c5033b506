package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every multi-step
// command sequence (reference checks, write, re-read) runs inside one unit of
// work, so a reference validated at the start of the sequence cannot dangle
// by the time the dependent row is written.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repository accessors return instances bound to the current
	// transaction when one is active.
	ProductRepository() ProductRepository
	CategoryRepository() CategoryRepository
	SupplierRepository() SupplierRepository
	CustomerRepository() CustomerRepository
	OrderRepository() OrderRepository
	ExportOrderRepository() ExportOrderRepository
}
