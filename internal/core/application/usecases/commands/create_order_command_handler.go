package commands

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the transactional order creation workflow.
//
// The workflow resolves the farmer first, outside any transaction, then opens
// a unit of work, resolves every requested product inside it, snapshots each
// line price, and persists the order header together with all item rows in a
// single commit. Any missing product or storage failure rolls the whole unit
// of work back, so an order with zero persisted items can never result from
// this handler.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for the order creation workflow.
// Requires a UoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created aggregate.
//
// Error outcomes:
//   - an unconstructed command fails before any store contact
//   - an unresolvable farmer fails before a transaction is opened
//   - an unresolvable product rolls back the already inserted header
//   - storage failures roll back and surface as-is
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	// Farmer resolution happens before Begin, so a bad farmer reference
	// never opens a transaction.
	if _, err := uow.UserRepository().Get(ctx, cmd.FarmerID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundError("farmer", cmd.FarmerID().String())
		}
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderDate(),
		cmd.Status(),
		cmd.FarmerID(),
		cmd.AdminID(),
		cmd.TotalPrice(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	for _, input := range cmd.Items() {
		product, productErr := productRepo.Get(ctx, input.ProductID())
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewItem(kernel.NewUUID(), product.ID(), input.Quantity(), product.Price())
		if itemErr != nil {
			return nil, itemErr
		}

		if itemErr = newOrder.AddItem(item); itemErr != nil {
			return nil, itemErr
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
