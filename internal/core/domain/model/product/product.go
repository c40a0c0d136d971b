// Package product models the product catalog as seen by the order workflows.
// Products are looked up for price snapshots and are never mutated here.
package product

import (
	"errors"
	"fmt"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct")

// Product is a read-only view of a catalog entry.
type Product struct {
	id    kernel.UUID
	name  string
	price float64

	isConstructed bool
}

// RestoreProduct reconstructs a product from the catalog store.
func RestoreProduct(id kernel.UUID, name string, price float64) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := p.setID(id); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	p.name = name
	p.price = price

	return p, nil
}

// Validate ensures the product was created through RestoreProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current catalog price.
func (p *Product) Price() float64 {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}
