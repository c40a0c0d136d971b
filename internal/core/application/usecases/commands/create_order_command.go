package commands

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemInputIsNotConstructed = errors.New(
		"ItemInput must be created via NewItemInput constructor",
	)
)

// ItemInput is one requested line of a new order: which product, how many.
// The line price is not part of the input; it is snapshotted from the catalog
// by the creation workflow.
type ItemInput struct {
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewItemInput creates a validated order line request.
// The product reference must be a valid UUID and the quantity positive.
func NewItemInput(productID kernel.UUID, quantity int) (ItemInput, error) {
	if err := productID.Validate(); err != nil {
		return ItemInput{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	if quantity <= 0 {
		return ItemInput{}, errs.NewValueIsInvalidError("quantity")
	}

	return ItemInput{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the input was created through the constructor.
func (i ItemInput) Validate() error {
	return i.guard.Validate(ErrItemInputIsNotConstructed)
}

// ProductID returns the requested product reference.
func (i ItemInput) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i ItemInput) Quantity() int {
	return i.quantity
}

// CreateOrderCommand represents a request to place a new order with its line
// items. All preconditions of the creation workflow are validated here, before
// the store is contacted: the order date, status, and farmer reference must be
// present, and at least one item must be requested.
//
// Example:
//
//	items := []commands.ItemInput{item}
//	cmd, err := commands.NewCreateOrderCommand(
//	    kernel.NewUUID(), orderDate, order.Pending, farmerID, nil, 20.0, items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	orderDate  time.Time
	status     order.Status
	farmerID   kernel.UUID
	adminID    *kernel.UUID
	totalPrice float64
	items      []ItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Returns an error if any precondition is violated; a failed command never
// reaches a handler, so invalid input causes no writes.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderDate time.Time,
	status order.Status,
	farmerID kernel.UUID,
	adminID *kernel.UUID,
	totalPrice float64,
	items []ItemInput,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrderDate(orderDate),
		orderCommand.setStatus(status),
		orderCommand.setFarmerID(farmerID),
		orderCommand.setAdminID(adminID),
		orderCommand.setTotalPrice(totalPrice),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier allocated for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderDate returns the date the order is placed for.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// Status returns the requested initial status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// FarmerID returns the farmer the order belongs to.
func (c CreateOrderCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

// AdminID returns the optional managing admin reference.
func (c CreateOrderCommand) AdminID() *kernel.UUID {
	return c.adminID
}

// TotalPrice returns the caller-submitted total price.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// Items returns the requested line items in input order.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	c.orderDate = orderDate
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateOrderCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("farmerId", err)
	}
	c.farmerID = farmerID
	return nil
}

func (c *CreateOrderCommand) setAdminID(adminID *kernel.UUID) error {
	if adminID == nil {
		return nil
	}
	if err := adminID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("adminId", err)
	}
	c.adminID = adminID
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	c.totalPrice = totalPrice
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = items
	return nil
}
