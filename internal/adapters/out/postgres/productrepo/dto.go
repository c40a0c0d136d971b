// Package productrepo maps the product catalog table for read-only lookups.
package productrepo

import (
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents one product catalog row.
type ProductDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Price float64
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database row to a product entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price)
}
