package commands

import (
	"context"
	"time"

	"orders/internal/core/ports"
)

// FinalizeOrderCommandHandler charges the order and marks it COMPLETED.
// A declined payment leaves the order ONGOING and returns ports.ErrPaymentDeclined.
// The order row stays locked from the status check until commit, so a concurrent finalize
// waits and then fails on the COMPLETED status without charging again.
type FinalizeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	payments   ports.PaymentGateway
}

func NewFinalizeOrderCommandHandler(uowFactory OrderUoWFactory, payments ports.PaymentGateway) FinalizeOrderCommandHandler {
	return FinalizeOrderCommandHandler{
		uowFactory: uowFactory,
		payments:   payments,
	}
}

// Handle returns the payment transaction id.
func (h FinalizeOrderCommandHandler) Handle(ctx context.Context, cmd FinalizeOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	// Only ONGOING orders may be charged.
	if _, err = o.Status().Complete(); err != nil {
		return "", err
	}

	transactionID, err := h.payments.ProcessPayment(ctx, cmd.PaymentDetails())
	if err != nil {
		return "", err
	}

	if err = o.Complete(time.Now().UTC()); err != nil {
		return "", err
	}

	if err = repo.Update(ctx, o); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return transactionID, nil
}
