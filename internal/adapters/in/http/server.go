package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"orders/internal/core/application/service"
	"orders/internal/core/application/views"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const cancelledMessage = "Order has been cancelled"

// OrderService is the application API the HTTP layer talks to.
type OrderService interface {
	CreateOrder(ctx context.Context, identity service.Identity) (views.OrderView, error)
	GetOrder(ctx context.Context, orderID kernel.UUID) (views.OrderView, error)
	UpdateDeliveryAddress(ctx context.Context, orderID kernel.UUID, address kernel.DeliveryAddress) (views.OrderView, error)
	AddToOrder(ctx context.Context, orderID kernel.UUID, productID int64, quantity int) (views.OrderView, error)
	UpdateOrder(ctx context.Context, orderID kernel.UUID, productID int64, quantity int) (views.OrderView, error)
	FinalizeOrder(ctx context.Context, orderID kernel.UUID, paymentDetails string) (service.FinalizeResult, error)
	CancelOrder(ctx context.Context, orderID kernel.UUID) error
	OrderHistory(ctx context.Context, identity service.Identity, since *time.Time) ([]views.OrderView, error)
}

// Server implements ServerInterface on top of OrderService.
type Server struct {
	orders OrderService
	logger *slog.Logger
}

func NewServer(orders OrderService, logger *slog.Logger) *Server {
	return &Server{
		orders: orders,
		logger: logger.With("component", "http"),
	}
}

// GetOrder handles GET /order/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID kernel.UUID) error {
	view, err := s.orders.GetOrder(ctx.Request().Context(), orderID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// SetDeliveryAddress handles POST /order/{orderId}/delivery-address.
func (s *Server) SetDeliveryAddress(ctx echo.Context, orderID kernel.UUID) error {
	var body DeliveryAddressRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address := kernel.NewDeliveryAddress(body.Street, body.City, body.PostalCode, body.Country)
	view, err := s.orders.UpdateDeliveryAddress(ctx.Request().Context(), orderID, address)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetOrderHistory handles POST /order/orderHistory.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	var body OrderHistoryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var since *time.Time
	if body.EarliestOrderDate != nil && strings.TrimSpace(*body.EarliestOrderDate) != "" {
		t, err := parseOrderDate(*body.EarliestOrderDate)
		if err != nil {
			return s.writeError(ctx, err)
		}
		since = &t
	}

	result, err := s.orders.OrderHistory(ctx.Request().Context(), identityFrom(ctx), since)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(result))
}

// CreateOrder handles POST /order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	view, err := s.orders.CreateOrder(ctx.Request().Context(), identityFrom(ctx))
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// AddToOrder handles POST /order/addToOrder.
func (s *Server) AddToOrder(ctx echo.Context) error {
	orderID, body, err := bindOrderItem(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.orders.AddToOrder(ctx.Request().Context(), orderID, body.ProductID, body.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(view))
}

// UpdateOrder handles PUT /order/update.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, body, err := bindOrderItem(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.orders.UpdateOrder(ctx.Request().Context(), orderID, body.ProductID, body.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// FinalizeOrder handles PUT /order/finalizeOrder/{orderId}.
func (s *Server) FinalizeOrder(ctx echo.Context, orderID kernel.UUID) error {
	var body FinalizeOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := s.orders.FinalizeOrder(ctx.Request().Context(), orderID, body.PaymentDetails)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, FinalizeOrderResponse{
		Message:       result.Message,
		TransactionID: result.TransactionID,
	})
}

// CancelOrder handles DELETE /order/cancel/{orderId}.
func (s *Server) CancelOrder(ctx echo.Context, orderID kernel.UUID) error {
	if err := s.orders.CancelOrder(ctx.Request().Context(), orderID); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.String(http.StatusOK, cancelledMessage)
}

func bindOrderItem(ctx echo.Context) (kernel.UUID, OrderItemRequest, error) {
	var body OrderItemRequest
	if err := ctx.Bind(&body); err != nil {
		return kernel.UUID{}, body, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderID[:])
	if err != nil {
		return kernel.UUID{}, body, err
	}

	return orderID, body, nil
}

var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func parseOrderDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errs.NewValueIsInvalidError("earliestOrderDate")
}
