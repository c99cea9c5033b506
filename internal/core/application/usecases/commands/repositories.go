// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, reference checks, persistence, and a re-read of
// the affected row inside the same transaction.
package commands

import (
	"context"

	"inventory/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler names the narrowest composition it needs, so tests
// can mock exactly that surface.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// SupplierRepoFactory provides access to the supplier repository within a transaction.
	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ExportOrderRepoFactory provides access to the export-order repository within a transaction.
	ExportOrderRepoFactory interface {
		ExportOrderRepository() ports.ExportOrderRepository
	}

	// OrderUoW manages transactions for purchase-order operations.
	// Order writes validate supplier and product references, so the unit of
	// work spans those repositories too.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		SupplierRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ExportOrderUoW manages transactions for export-order operations.
	// Export-order writes validate customer and product references.
	ExportOrderUoW interface {
		TxManager
		ExportOrderRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
	}

	// ExportOrderUoWFactory creates new export-order unit of work instances.
	ExportOrderUoWFactory interface {
		Create() ExportOrderUoW
	}

	// ProductUoW manages transactions for product operations.
	// Product writes validate the category reference.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
		CategoryRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// CategoryUoW manages transactions for category-only operations.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	// CategoryUoWFactory creates new category unit of work instances.
	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// SupplierUoW manages transactions for supplier-only operations.
	SupplierUoW interface {
		TxManager
		SupplierRepoFactory
	}

	// SupplierUoWFactory creates new supplier unit of work instances.
	SupplierUoWFactory interface {
		Create() SupplierUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}
)
