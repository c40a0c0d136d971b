package queries

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists order headers from the database.
//
// Example:
//
//	handler := queries.NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, queries.NewGetOrdersQuery())
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing, applying the status filter when one is set.
// Rows come back ordered by id.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_date,
			status,
			farmer_id,
			admin_id,
			total_price
		FROM orders
	`
	args := make([]any, 0, 1)
	if query.Status() != nil {
		sql += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			orderDate  time.Time
			status     string
			farmerID   uuid.UUID
			adminID    uuid.NullUUID
			totalPrice float64
		)

		if err = rows.Scan(&id, &orderDate, &status, &farmerID, &adminID, &totalPrice); err != nil {
			return nil, err
		}

		resp, respErr := buildOrderResponse(id, orderDate, status, farmerID, adminID, totalPrice)
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// buildOrderResponse maps scanned columns into the response representation.
func buildOrderResponse(
	id uuid.UUID,
	orderDate time.Time,
	status string,
	farmerID uuid.UUID,
	adminID uuid.NullUUID,
	totalPrice float64,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	farmer, err := kernel.UUIDFromBytes(farmerID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var admin *kernel.UUID
	if adminID.Valid {
		adminUUID, adminErr := kernel.UUIDFromBytes(adminID.UUID[:])
		if adminErr != nil {
			return OrderResponse{}, adminErr
		}
		admin = &adminUUID
	}

	orderStatus, err := order.StatusFromString(status)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:         orderID,
		OrderDate:  orderDate,
		Status:     orderStatus,
		FarmerID:   farmer,
		AdminID:    admin,
		TotalPrice: totalPrice,
	}, nil
}
