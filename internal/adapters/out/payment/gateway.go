// Package payment contains the payment gateway used when finalizing orders.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"
)

// SimulatedGateway accepts any non-blank payment details and issues a random transaction id.
// It stands in for a real provider integration.
type SimulatedGateway struct {
	logger *slog.Logger
}

func NewSimulatedGateway(logger *slog.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger.With("component", "payment")}
}

func (g *SimulatedGateway) ProcessPayment(ctx context.Context, paymentDetails string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.TrimSpace(paymentDetails) == "" {
		g.logger.WarnContext(ctx, "payment declined", "reason", "empty payment details")
		return "", ports.ErrPaymentDeclined
	}

	transactionID := kernel.NewUUID().String()
	g.logger.InfoContext(ctx, "payment accepted", "transaction_id", transactionID)
	return transactionID, nil
}
