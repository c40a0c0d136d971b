package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents an admin's request to patch an existing order.
// Nil patch fields are preserved on the order; non-nil fields overwrite.
// The acting identity is recorded as the order's admin regardless of the patch.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actingUserID kernel.UUID
	patch        order.Patch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order on behalf of the
// acting user. Supplied patch fields are validated here; omitted ones are not.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	actingUserID kernel.UUID,
	patch order.Patch,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActingUserID(actingUserID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingUserID returns the authenticated identity performing the update.
func (c UpdateOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// Patch returns the partial update to merge into the order.
func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActingUserID(actingUserID kernel.UUID) error {
	if err := actingUserID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("actingUserId", err)
	}
	c.actingUserID = actingUserID
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch order.Patch) error {
	if patch.OrderDate != nil && patch.OrderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	if patch.TotalPrice != nil && *patch.TotalPrice < 0 {
		return errs.NewValueIsInvalidError("totalPrice")
	}
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			return err
		}
	}
	if patch.FarmerID != nil {
		if err := patch.FarmerID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("farmerId", err)
		}
	}
	c.patch = patch
	return nil
}
