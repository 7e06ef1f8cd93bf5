package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrFinalizeOrderCommandIsNotConstructed = errors.New(
	"FinalizeOrderCommand must be created via NewFinalizeOrderCommand constructor",
)

// FinalizeOrderCommand pays for an ONGOING order and completes it. Payment details are
// passed through to the gateway untouched.
type FinalizeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	paymentDetails string

	guard guard.ConstructorGuard
}

func NewFinalizeOrderCommand(orderID kernel.UUID, paymentDetails string) (FinalizeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FinalizeOrderCommand{}, err
	}

	return FinalizeOrderCommand{
		orderID:        orderID,
		paymentDetails: paymentDetails,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c FinalizeOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeOrderCommandIsNotConstructed)
}

func (c FinalizeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c FinalizeOrderCommand) PaymentDetails() string {
	return c.paymentDetails
}
