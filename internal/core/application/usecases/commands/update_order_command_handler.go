package commands

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles admin patches to existing orders.
//
// The acting user must resolve to an admin; anyone else is rejected before a
// transaction is opened. Supplied patch fields overwrite, omitted fields keep
// their previous value, and the order's admin reference is always set to the
// acting identity. Line items are never touched.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the patched aggregate.
//
// Error outcomes:
//   - acting user missing or not an admin: forbidden, no transaction opened
//   - order missing: not found
//   - patched farmer reference missing: not found, rollback
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	userRepo := uow.UserRepository()

	actingUser, err := userRepo.Get(ctx, cmd.ActingUserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewForbiddenErrorWithCause("update order", err)
		}
		return nil, err
	}
	if !actingUser.IsAdmin() {
		return nil, errs.NewForbiddenError("update order")
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	foundOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	patch := cmd.Patch()
	if patch.FarmerID != nil {
		if _, err = userRepo.Get(ctx, *patch.FarmerID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewObjectNotFoundError("farmer", patch.FarmerID.String())
			}
			return nil, err
		}
	}

	if err = foundOrder.ApplyPatch(patch); err != nil {
		return nil, err
	}
	if err = foundOrder.AssignAdmin(cmd.ActingUserID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, foundOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return foundOrder, nil
}
