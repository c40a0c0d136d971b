package order

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line entry within an order. It captures the referenced product,
// the ordered quantity, and the line price snapshotted at creation time.
// Items live and die with their parent order and are never mutated afterwards.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	price     float64

	isConstructed bool
}

// NewItem creates a line item for a product. The line price is computed here,
// once, as productPrice * quantity; it stays fixed even if the catalog price
// changes later.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, productPrice float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setPrice(productPrice, quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence with its already
// snapshotted price.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int, price float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	item.price = price

	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the referenced product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the snapshotted line price.
func (i Item) Price() float64 {
	return i.price
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(productPrice float64, quantity int) error {
	if productPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("productPrice",
			fmt.Errorf("%f is negative", productPrice))
	}
	i.price = productPrice * float64(quantity)
	return nil
}
