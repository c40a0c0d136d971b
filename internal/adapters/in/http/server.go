// Package http is the inbound HTTP adapter. It binds and validates request
// DTOs, translates them into commands and queries, and maps the application's
// error taxonomy onto status codes. Internal error detail goes to the log,
// never into a response body.
package http

import (
	"errors"
	"net/http"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/application/usecases/queries"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ContextUserIDKey is where an upstream auth middleware places the
// authenticated user's id in the echo context.
const ContextUserIDKey = "userID"

// HeaderUserID is the fallback header carrying the authenticated user's id
// when no middleware populated the context.
const HeaderUserID = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler

	logger zerolog.Logger
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	logger zerolog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		updateOrderHandler:  updateOrderHandler,
		deleteOrderHandler:  deleteOrderHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderByIDHandler: getOrderByIDHandler,
		logger:              logger.With().Str("component", "http_server").Logger(),
	}
}

// RegisterRoutes wires the order endpoints onto the echo instance
// and installs the request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order with line items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err := ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := s.buildCreateOrderCommand(req)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponseFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by an exact status literal via the "status" query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	var query queries.GetOrdersQuery
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return s.writeError(ctx, err)
		}
		query, err = queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return s.writeError(ctx, err)
		}
	} else {
		query = queries.NewGetOrdersQuery()
	}

	rows, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, orderResponseFromQuery(row))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id - fetches one order with items.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	detail, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := orderResponseFromQuery(detail.Order)
	response.Items = make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		response.Items = append(response.Items, OrderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:id - merges a partial patch into
// an order. Only admins may call it; the acting identity is taken from the
// context or the X-User-Id header, and always becomes the order's admin.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	actingUserID, err := s.actingUserID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}
	if err = ctx.Validate(&req); err != nil {
		return s.writeError(ctx, err)
	}

	patch, err := buildPatch(req)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actingUserID, patch)
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order and,
// through the store cascade, its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order deleted successfully"})
}

// actingUserID resolves the authenticated identity for the update endpoint.
// A missing identity is a forbidden condition, not a validation one: the
// request is well-formed, the caller just is not an authenticated admin.
func (s *Server) actingUserID(ctx echo.Context) (kernel.UUID, error) {
	raw, _ := ctx.Get(ContextUserIDKey).(string)
	if raw == "" {
		raw = ctx.Request().Header.Get(HeaderUserID)
	}
	if raw == "" {
		return kernel.UUID{}, errs.NewForbiddenError("update order")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewForbiddenErrorWithCause("update order", err)
	}

	return id, nil
}

// buildCreateOrderCommand translates a validated request body into the
// creation command, allocating the new order's identifier.
func (s *Server) buildCreateOrderCommand(req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	farmerID, err := kernel.UUIDFromString(req.FarmerID)
	if err != nil {
		return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("farmer_id", err)
	}

	var adminID *kernel.UUID
	if req.AdminID != nil {
		id, adminErr := kernel.UUIDFromString(*req.AdminID)
		if adminErr != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("admin_id", adminErr)
		}
		adminID = &id
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, productErr := kernel.UUIDFromString(item.ProductID)
		if productErr != nil {
			return commands.CreateOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("productId", productErr)
		}

		input, inputErr := commands.NewItemInput(productID, item.Quantity)
		if inputErr != nil {
			return commands.CreateOrderCommand{}, inputErr
		}
		items = append(items, input)
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.OrderDate,
		status,
		farmerID,
		adminID,
		req.TotalPrice,
		items,
	)
}

// buildPatch translates an update request body into a domain patch.
func buildPatch(req UpdateOrderRequest) (order.Patch, error) {
	patch := order.Patch{
		OrderDate:  req.OrderDate,
		TotalPrice: req.TotalPrice,
	}

	if req.Status != nil {
		status, err := order.StatusFromString(*req.Status)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Status = &status
	}

	if req.FarmerID != nil {
		farmerID, err := kernel.UUIDFromString(*req.FarmerID)
		if err != nil {
			return order.Patch{}, errs.NewValueIsInvalidErrorWithCause("farmer_id", err)
		}
		patch.FarmerID = &farmerID
	}

	return patch, nil
}

// writeError maps the error taxonomy onto status codes. Four-hundreds carry
// the taxonomy message; everything else is a 500 with a generic body and the
// detail logged.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Only admin can update orders",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.Error().Err(err).
			Str("path", ctx.Request().URL.Path).
			Str("method", ctx.Request().Method).
			Msg("request failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
