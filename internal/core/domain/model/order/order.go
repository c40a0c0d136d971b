package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a purchase record in the marketplace. It is the aggregate
// root grouping one or more product line items under one farmer, an optional
// admin, a date, a status, and a total price.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid farmer reference
//   - Order date must be set and status must be in the accepted vocabulary
//   - Total price must not be negative
//   - Line items are appended during creation and never touched by updates
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	orderDate  time.Time
	status     Status
	farmerID   kernel.UUID
	adminID    *kernel.UUID
	totalPrice float64
	items      []Item

	isConstructed bool
}

// Patch carries a partial update for an order. Nil fields are left untouched;
// non-nil fields overwrite the current value after validation.
type Patch struct {
	OrderDate  *time.Time
	TotalPrice *float64
	Status     *Status
	FarmerID   *kernel.UUID
}

// NewOrder creates a new Order with validation. Items are attached afterwards
// via AddItem while the creation workflow resolves product prices.
//
// The total price is the amount submitted by the caller; it is not derived
// from the line items.
func NewOrder(
	id kernel.UUID,
	orderDate time.Time,
	status Status,
	farmerID kernel.UUID,
	adminID *kernel.UUID,
	totalPrice float64,
) (*Order, error) {
	order := &Order{isConstructed: true}

	if err := errors.Join(
		order.setID(id),
		order.setOrderDate(orderDate),
		order.setStatus(status),
		order.setFarmerID(farmerID),
		order.setAdminID(adminID),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its items.
// The same validation as NewOrder applies, so corrupted rows surface as errors
// instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderDate time.Time,
	status Status,
	farmerID kernel.UUID,
	adminID *kernel.UUID,
	totalPrice float64,
	items []Item,
) (*Order, error) {
	order, err := NewOrder(id, orderDate, status, farmerID, adminID, totalPrice)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = order.AddItem(item); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// FarmerID returns the identifier of the farmer the order belongs to.
func (o *Order) FarmerID() kernel.UUID {
	return o.farmerID
}

// AdminID returns the identifier of the managing admin, or nil if none is set.
func (o *Order) AdminID() *kernel.UUID {
	return o.adminID
}

// TotalPrice returns the order's total price.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Items returns a copy of the order's line items in the order they were added.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// AddItem appends a validated line item to the order.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// ApplyPatch merges a partial update into the order. Each supplied field
// overwrites the current value; omitted fields keep their previous value.
// Line items are never affected by a patch.
func (o *Order) ApplyPatch(patch Patch) error {
	if patch.OrderDate != nil {
		if err := o.setOrderDate(*patch.OrderDate); err != nil {
			return err
		}
	}

	if patch.TotalPrice != nil {
		if err := o.setTotalPrice(*patch.TotalPrice); err != nil {
			return err
		}
	}

	if patch.Status != nil {
		if err := o.setStatus(*patch.Status); err != nil {
			return err
		}
	}

	if patch.FarmerID != nil {
		if err := o.setFarmerID(*patch.FarmerID); err != nil {
			return err
		}
	}

	return nil
}

// AssignAdmin records the admin managing this order. The update workflow
// always calls this with the acting identity, regardless of what the patch
// contained.
func (o *Order) AssignAdmin(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	o.adminID = &adminID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("farmerId", err)
	}
	o.farmerID = farmerID
	return nil
}

func (o *Order) setAdminID(adminID *kernel.UUID) error {
	if adminID == nil {
		o.adminID = nil
		return nil
	}
	if err := adminID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("adminId", err)
	}
	o.adminID = adminID
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%f is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}
