package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderHistoryQueryHandler returns orders oldest first. A customer without orders gets
// an empty slice, not an error.
type GetOrderHistoryQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrderHistoryQueryHandler(reader ports.OrderReader) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{reader: reader}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if since, ok := query.Since(); ok {
		orders, err = h.reader.ListByUserSince(ctx, query.UserID(), since)
	} else {
		orders, err = h.reader.ListByUser(ctx, query.UserID())
	}
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
