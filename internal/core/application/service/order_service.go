// Package service dispatches client requests to the order commands and queries and returns
// assembled views. It holds no business rules of its own.
package service

import (
	"context"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/application/views"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

// FinalizeMessage is returned alongside the transaction id of a successful payment.
const FinalizeMessage = "Payment approved and order completed"

// Identity is the already authenticated caller.
type Identity struct {
	UserID kernel.UserID
}

type FinalizeResult struct {
	Message       string
	TransactionID string
}

type OrderService struct {
	createOrder        commands.CreateOrderCommandHandler
	setDeliveryAddress commands.SetDeliveryAddressCommandHandler
	upsertItem         commands.UpsertOrderItemCommandHandler
	finalizeOrder      commands.FinalizeOrderCommandHandler
	cancelOrder        commands.CancelOrderCommandHandler
	getOrder           queries.GetOrderQueryHandler
	getOrderHistory    queries.GetOrderHistoryQueryHandler
	assembler          *views.Assembler
}

func NewOrderService(
	uowFactory commands.OrderUoWFactory,
	reader ports.OrderReader,
	payments ports.PaymentGateway,
	assembler *views.Assembler,
) *OrderService {
	return &OrderService{
		createOrder:        commands.NewCreateOrderCommandHandler(uowFactory),
		setDeliveryAddress: commands.NewSetDeliveryAddressCommandHandler(uowFactory),
		upsertItem:         commands.NewUpsertOrderItemCommandHandler(uowFactory),
		finalizeOrder:      commands.NewFinalizeOrderCommandHandler(uowFactory, payments),
		cancelOrder:        commands.NewCancelOrderCommandHandler(uowFactory),
		getOrder:           queries.NewGetOrderQueryHandler(reader),
		getOrderHistory:    queries.NewGetOrderHistoryQueryHandler(reader),
		assembler:          assembler,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, identity Identity) (views.OrderView, error) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, identity.UserID)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = s.createOrder.Handle(ctx, cmd); err != nil {
		return views.OrderView{}, err
	}

	return s.GetOrder(ctx, orderID)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID kernel.UUID) (views.OrderView, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return views.OrderView{}, err
	}

	o, err := s.getOrder.Handle(ctx, query)
	if err != nil {
		return views.OrderView{}, err
	}

	return s.assembler.Assemble(ctx, o), nil
}

func (s *OrderService) UpdateDeliveryAddress(
	ctx context.Context,
	orderID kernel.UUID,
	address kernel.DeliveryAddress,
) (views.OrderView, error) {
	cmd, err := commands.NewSetDeliveryAddressCommand(orderID, address)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = s.setDeliveryAddress.Handle(ctx, cmd); err != nil {
		return views.OrderView{}, err
	}

	return s.GetOrder(ctx, orderID)
}

// AddToOrder sets the quantity of productID on the order, adding the line if needed.
func (s *OrderService) AddToOrder(
	ctx context.Context,
	orderID kernel.UUID,
	productID int64,
	quantity int,
) (views.OrderView, error) {
	cmd, err := commands.NewUpsertOrderItemCommand(orderID, productID, quantity)
	if err != nil {
		return views.OrderView{}, err
	}

	if err = s.upsertItem.Handle(ctx, cmd); err != nil {
		return views.OrderView{}, err
	}

	return s.GetOrder(ctx, orderID)
}

// UpdateOrder is the same upsert as AddToOrder, kept as a separate entry point for clients.
func (s *OrderService) UpdateOrder(
	ctx context.Context,
	orderID kernel.UUID,
	productID int64,
	quantity int,
) (views.OrderView, error) {
	return s.AddToOrder(ctx, orderID, productID, quantity)
}

func (s *OrderService) FinalizeOrder(
	ctx context.Context,
	orderID kernel.UUID,
	paymentDetails string,
) (FinalizeResult, error) {
	cmd, err := commands.NewFinalizeOrderCommand(orderID, paymentDetails)
	if err != nil {
		return FinalizeResult{}, err
	}

	transactionID, err := s.finalizeOrder.Handle(ctx, cmd)
	if err != nil {
		return FinalizeResult{}, err
	}

	return FinalizeResult{
		Message:       FinalizeMessage,
		TransactionID: transactionID,
	}, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID kernel.UUID) error {
	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return err
	}

	return s.cancelOrder.Handle(ctx, cmd)
}

// OrderHistory lists the caller's orders, optionally only those created at or after since.
func (s *OrderService) OrderHistory(
	ctx context.Context,
	identity Identity,
	since *time.Time,
) ([]views.OrderView, error) {
	query, err := queries.NewGetOrderHistoryQuery(identity.UserID, since)
	if err != nil {
		return nil, err
	}

	orders, err := s.getOrderHistory.Handle(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.assembler.AssembleAll(ctx, orders), nil
}
