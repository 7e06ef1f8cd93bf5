package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a product line of an order. An order holds at most one item per product.
type Item struct {
	productID int64
	quantity  int

	isConstructed bool
}

func NewItem(productID int64, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ProductID() int64 {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productID is invalid", fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
