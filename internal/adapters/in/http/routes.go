package http

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the order endpoints. Path parameters arrive already parsed.
type ServerInterface interface {
	GetOrder(ctx echo.Context, orderID kernel.UUID) error
	SetDeliveryAddress(ctx echo.Context, orderID kernel.UUID) error
	GetOrderHistory(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	AddToOrder(ctx echo.Context) error
	UpdateOrder(ctx echo.Context) error
	FinalizeOrder(ctx echo.Context, orderID kernel.UUID) error
	CancelOrder(ctx echo.Context, orderID kernel.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) SetDeliveryAddress(ctx echo.Context) error {
	orderID, err := bindOrderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return w.Handler.SetDeliveryAddress(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	return w.Handler.GetOrderHistory(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) AddToOrder(ctx echo.Context) error {
	return w.Handler.AddToOrder(ctx)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	return w.Handler.UpdateOrder(ctx)
}

func (w *ServerInterfaceWrapper) FinalizeOrder(ctx echo.Context) error {
	orderID, err := bindOrderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return w.Handler.FinalizeOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindOrderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func bindOrderIDParam(ctx echo.Context) (kernel.UUID, error) {
	var orderID openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return kernel.UUIDFromBytes(orderID[:])
}

// RegisterHandlers adds the order routes to router. Routes that act on behalf of the
// caller go through auth.
func RegisterHandlers(router *echo.Echo, si ServerInterface, auth echo.MiddlewareFunc) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/order/:orderId", w.GetOrder)
	router.POST("/order/:orderId/delivery-address", w.SetDeliveryAddress)
	router.POST("/order/orderHistory", w.GetOrderHistory, auth)
	router.POST("/order", w.CreateOrder, auth)
	router.POST("/order/addToOrder", w.AddToOrder)
	router.PUT("/order/finalizeOrder/:orderId", w.FinalizeOrder)
	router.PUT("/order/update", w.UpdateOrder)
	router.DELETE("/order/cancel/:orderId", w.CancelOrder)
}
