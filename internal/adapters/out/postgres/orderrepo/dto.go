// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Item rows are associated with ON DELETE CASCADE so they never outlive their
// order.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderDate  time.Time  `gorm:"not null"`
	Status     string     `gorm:"type:varchar(32);index;not null"`
	FarmerID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	AdminID    *uuid.UUID `gorm:"type:uuid"`
	TotalPrice float64
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item row.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int
	Price     float64
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// including its item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	var adminID *uuid.UUID
	if id := aggregate.AdminID(); id != nil {
		raw := id.Bytes()
		adminID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		OrderDate:  aggregate.OrderDate(),
		Status:     aggregate.Status().String(),
		FarmerID:   aggregate.FarmerID().Bytes(),
		AdminID:    adminID,
		TotalPrice: aggregate.TotalPrice(),
		Items:      items,
	}
}

// toDomain converts a database DTO back into an order aggregate,
// reconstructing every line item with its snapshotted price.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	var adminID *kernel.UUID
	if dto.AdminID != nil {
		aID, adminErr := kernel.UUIDFromBytes((*dto.AdminID)[:])
		if adminErr != nil {
			return nil, adminErr
		}
		adminID = &aID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		item, restoreErr := order.RestoreItem(itemID, productID, itemDTO.Quantity, itemDTO.Price)
		if restoreErr != nil {
			return nil, restoreErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.OrderDate, status, farmerID, adminID, dto.TotalPrice, items)
}
