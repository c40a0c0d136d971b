package http

import (
	"time"

	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/order"
)

// CreateOrderRequest is the body of POST /api/v1/orders. Field names follow
// the public API contract, including the snake_case user references.
type CreateOrderRequest struct {
	OrderDate  time.Time                `json:"orderDate" validate:"required"`
	Status     string                   `json:"status" validate:"required"`
	FarmerID   string                   `json:"farmer_id" validate:"required,uuid"`
	AdminID    *string                  `json:"admin_id" validate:"omitempty,uuid"`
	TotalPrice float64                  `json:"totalPrice" validate:"gte=0"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItemRequest is one requested line item.
type CreateOrderItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderRequest is the body of PUT /api/v1/orders/:id. All fields are
// optional; omitted fields keep their stored value.
type UpdateOrderRequest struct {
	OrderDate  *time.Time `json:"orderDate"`
	Status     *string    `json:"status"`
	FarmerID   *string    `json:"farmer_id" validate:"omitempty,uuid"`
	TotalPrice *float64   `json:"totalPrice" validate:"omitempty,gte=0"`
}

// OrderItemResponse is one line item in an order representation.
type OrderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"orderPrice"`
}

// OrderResponse is the public representation of an order.
type OrderResponse struct {
	ID         string              `json:"id"`
	OrderDate  time.Time           `json:"orderDate"`
	Status     string              `json:"status"`
	FarmerID   string              `json:"farmer_id"`
	AdminID    *string             `json:"admin_id,omitempty"`
	TotalPrice float64             `json:"totalPrice"`
	Items      []OrderItemResponse `json:"items,omitempty"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderResponseFromAggregate shapes a domain aggregate for the API.
func orderResponseFromAggregate(o *order.Order) OrderResponse {
	var adminID *string
	if id := o.AdminID(); id != nil {
		s := id.String()
		adminID = &s
	}

	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:        item.ID().String(),
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	return OrderResponse{
		ID:         o.ID().String(),
		OrderDate:  o.OrderDate(),
		Status:     o.Status().String(),
		FarmerID:   o.FarmerID().String(),
		AdminID:    adminID,
		TotalPrice: o.TotalPrice(),
		Items:      items,
	}
}

// orderResponseFromQuery shapes a read-side header row for the API.
func orderResponseFromQuery(row queries.OrderResponse) OrderResponse {
	var adminID *string
	if row.AdminID != nil {
		s := row.AdminID.String()
		adminID = &s
	}

	return OrderResponse{
		ID:         row.ID.String(),
		OrderDate:  row.OrderDate,
		Status:     row.Status.String(),
		FarmerID:   row.FarmerID.String(),
		AdminID:    adminID,
		TotalPrice: row.TotalPrice,
	}
}
