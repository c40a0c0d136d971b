// Package queries contains the read side of the CQRS architecture.
// Query handlers read directly from the database connection with raw SQL,
// bypassing the aggregate repositories used by the write side.
package queries

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetOrdersByStatusQuery",
)

// GetOrdersQuery retrieves order headers, either all of them or only those in
// a given status. Results are always ordered by id so repeated reads return
// rows in a stable, documented order.
//
// Example:
//
//	query := queries.NewGetOrdersByStatusQuery(order.Pending)
//	pending, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query returning every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByStatusQuery creates a query returning only orders whose
// status equals the given literal. The literal must be a valid status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when all orders are requested.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderResponse is one order header in a listing.
type OrderResponse struct {
	ID         kernel.UUID
	OrderDate  time.Time
	Status     order.Status
	FarmerID   kernel.UUID
	AdminID    *kernel.UUID
	TotalPrice float64
}
