package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its line items.
	// The order must be valid and carry at least one item.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's header fields.
	// Line items are never rewritten by Update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order by its unique identifier. Line item rows are
	// removed by the store's referential cascade.
	Delete(ctx context.Context, id kernel.UUID) error
}
