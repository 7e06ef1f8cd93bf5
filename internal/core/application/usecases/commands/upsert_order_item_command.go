package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpsertOrderItemCommandIsNotConstructed = errors.New(
	"UpsertOrderItemCommand must be created via NewUpsertOrderItemCommand constructor",
)

// UpsertOrderItemCommand sets the quantity of a product on an order, adding the line
// when the product is not on the order yet.
type UpsertOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID int64
	quantity  int

	guard guard.ConstructorGuard
}

func NewUpsertOrderItemCommand(orderID kernel.UUID, productID int64, quantity int) (UpsertOrderItemCommand, error) {
	cmd := UpsertOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return UpsertOrderItemCommand{}, err
	}

	return cmd, nil
}

func (c UpsertOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpsertOrderItemCommandIsNotConstructed)
}

func (c UpsertOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpsertOrderItemCommand) ProductID() int64 {
	return c.productID
}

func (c UpsertOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpsertOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpsertOrderItemCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productID", fmt.Errorf("%d is not greater than 0", productID))
	}

	c.productID = productID
	return nil
}

func (c *UpsertOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
