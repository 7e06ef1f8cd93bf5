package http

import (
	"time"

	"orders/internal/core/application/views"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type DeliveryAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderItemRequest is shared by addToOrder and update.
type OrderItemRequest struct {
	OrderID   openapi_types.UUID `json:"orderId"`
	ProductID int64              `json:"productId"`
	Quantity  int                `json:"quantity"`
}

type FinalizeOrderRequest struct {
	PaymentDetails string `json:"paymentDetails"`
}

type FinalizeOrderResponse struct {
	Message       string `json:"message"`
	TransactionID string `json:"transactionId"`
}

// OrderHistoryRequest accepts an RFC 3339 timestamp, a timestamp without zone (UTC),
// or a plain date.
type OrderHistoryRequest struct {
	EarliestOrderDate *string `json:"earliestOrderDate,omitempty"`
}

type OrderItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type Order struct {
	OrderID     openapi_types.UUID `json:"orderId"`
	Items       []OrderItem        `json:"items"`
	OrderStatus string             `json:"orderStatus"`
	CompletedAt *time.Time         `json:"completedAt"`
	WeatherInfo *string            `json:"weatherInfo"`
}

func toOrder(v views.OrderView) Order {
	items := make([]OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return Order{
		OrderID:     v.OrderID.Bytes(),
		Items:       items,
		OrderStatus: v.Status,
		CompletedAt: v.CompletedAt,
		WeatherInfo: v.WeatherInfo,
	}
}

func toOrders(vs []views.OrderView) []Order {
	result := make([]Order, 0, len(vs))
	for _, v := range vs {
		result = append(result, toOrder(v))
	}
	return result
}
