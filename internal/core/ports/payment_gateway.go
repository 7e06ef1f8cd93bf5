package ports

import (
	"context"
	"errors"
)

// ErrPaymentDeclined is returned when the payment provider refuses a charge.
var ErrPaymentDeclined = errors.New("payment declined")

// PaymentGateway charges an order and returns the provider's transaction id.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, paymentDetails string) (string, error)
}
