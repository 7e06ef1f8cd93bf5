// Package views turns order aggregates into the read model returned to clients.
package views

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// WeatherUnavailable replaces the weather line whenever the lookup fails.
const WeatherUnavailable = "Weather information unavailable"

const DefaultWeatherTimeout = 300 * time.Millisecond

type ItemView struct {
	ProductID int64
	Quantity  int
}

// OrderView is built fresh on every read and never stored.
type OrderView struct {
	OrderID     kernel.UUID
	Items       []ItemView
	Status      string
	CompletedAt *time.Time
	WeatherInfo *string
}

// Assembler builds OrderView values. Weather is looked up only for orders with a delivery
// city; a failed lookup is logged and replaced by WeatherUnavailable. The lookup is bounded
// by the assembler's own timeout and ignores cancellation of the caller's context.
type Assembler struct {
	weather ports.WeatherProvider
	timeout time.Duration
	logger  *slog.Logger
}

func NewAssembler(weather ports.WeatherProvider, timeout time.Duration, logger *slog.Logger) *Assembler {
	if timeout <= 0 {
		timeout = DefaultWeatherTimeout
	}

	return &Assembler{
		weather: weather,
		timeout: timeout,
		logger:  logger.With("component", "order-view-assembler"),
	}
}

func (a *Assembler) Assemble(ctx context.Context, o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		OrderID:     o.ID(),
		Items:       make([]ItemView, 0, len(items)),
		Status:      o.Status().String(),
		CompletedAt: o.CompletedAt(),
	}

	for _, item := range items {
		view.Items = append(view.Items, ItemView{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
		})
	}

	if address := o.DeliveryAddress(); address != nil && address.HasCity() {
		info := a.describeWeather(ctx, address.City())
		view.WeatherInfo = &info
	}

	return view
}

// AssembleAll keeps the order of orders.
func (a *Assembler) AssembleAll(ctx context.Context, orders []*order.Order) []OrderView {
	result := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		result = append(result, a.Assemble(ctx, o))
	}
	return result
}

func (a *Assembler) describeWeather(ctx context.Context, city string) string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
	defer cancel()

	info, err := a.weather.Describe(ctx, city)
	if err != nil {
		a.logger.WarnContext(ctx, "weather lookup failed", "city", city, "error", err)
		return WeatherUnavailable
	}

	return info
}
