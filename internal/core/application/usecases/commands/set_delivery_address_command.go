package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrSetDeliveryAddressCommandIsNotConstructed = errors.New(
	"SetDeliveryAddressCommand must be created via NewSetDeliveryAddressCommand constructor",
)

// SetDeliveryAddressCommand replaces the delivery address of an order. Address fields are
// not validated.
type SetDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	address kernel.DeliveryAddress

	guard guard.ConstructorGuard
}

func NewSetDeliveryAddressCommand(orderID kernel.UUID, address kernel.DeliveryAddress) (SetDeliveryAddressCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetDeliveryAddressCommand{}, err
	}

	return SetDeliveryAddressCommand{
		orderID: orderID,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryAddressCommandIsNotConstructed)
}

func (c SetDeliveryAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetDeliveryAddressCommand) Address() kernel.DeliveryAddress {
	return c.address
}
