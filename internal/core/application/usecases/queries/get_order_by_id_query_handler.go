package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order with its line items.
// Reads are side-effect free: repeated calls with no intervening writes
// return identical data.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail reads.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the detail read. Returns a not-found error when the order
// does not exist.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var (
		id         uuid.UUID
		orderDate  time.Time
		status     string
		farmerID   uuid.UUID
		adminID    uuid.NullUUID
		totalPrice float64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_date,
			status,
			farmer_id,
			admin_id,
			total_price
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &orderDate, &status, &farmerID, &adminID, &totalPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderByIDQueryResponse{}, err
	}

	header, err := buildOrderResponse(id, orderDate, status, farmerID, adminID, totalPrice)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return GetOrderByIDQueryResponse{
		Order: header,
		Items: items,
	}, nil
}

func (h GetOrderByIDQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			productID uuid.UUID
			quantity  int
			price     float64
		)

		if err = rows.Scan(&id, &productID, &quantity, &price); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		product, productErr := kernel.UUIDFromBytes(productID[:])
		if productErr != nil {
			return nil, productErr
		}

		items = append(items, OrderItemResponse{
			ID:        itemID,
			ProductID: product,
			Quantity:  quantity,
			Price:     price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
