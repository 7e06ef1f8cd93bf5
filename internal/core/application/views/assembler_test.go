package views_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/application/views"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWeatherProvider struct{ mock.Mock }

func (m *MockWeatherProvider) Describe(ctx context.Context, city string) (string, error) {
	args := m.Called(ctx, city)
	return args.String(0), args.Error(1)
}

func newAssembler(weather *MockWeatherProvider) *views.Assembler {
	return views.NewAssembler(weather, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.UserID(42), time.Now())
	require.NoError(t, err)
	return o
}

func TestAssembler_Assemble_WithoutAddress(t *testing.T) {
	weather := new(MockWeatherProvider)
	o := newOrder(t)
	require.NoError(t, o.AddOrUpdateItem(7, 3))
	require.NoError(t, o.AddOrUpdateItem(9, 1))

	view := newAssembler(weather).Assemble(t.Context(), o)

	assert.Equal(t, o.ID(), view.OrderID)
	assert.Equal(t, "ONGOING", view.Status)
	assert.Equal(t, []views.ItemView{{ProductID: 7, Quantity: 3}, {ProductID: 9, Quantity: 1}}, view.Items)
	assert.Nil(t, view.CompletedAt)
	assert.Nil(t, view.WeatherInfo)
	weather.AssertNotCalled(t, "Describe", mock.Anything, mock.Anything)
}

func TestAssembler_Assemble_BlankCitySkipsWeather(t *testing.T) {
	weather := new(MockWeatherProvider)
	o := newOrder(t)
	require.NoError(t, o.SetDeliveryAddress(kernel.NewDeliveryAddress("Main st 1", "   ", "0150", "NO")))

	view := newAssembler(weather).Assemble(t.Context(), o)

	assert.Nil(t, view.WeatherInfo)
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	weather.AssertNotCalled(t, "Describe", mock.Anything, mock.Anything)
}

func TestAssembler_Assemble_WithWeather(t *testing.T) {
	weather := new(MockWeatherProvider)
	weather.On("Describe", mock.Anything, "Oslo").Return("Weather in Oslo: 4.0°C, Light rain", nil).Once()
	o := newOrder(t)
	require.NoError(t, o.SetDeliveryAddress(kernel.NewDeliveryAddress("Karl Johans gate 1", "Oslo", "0154", "NO")))
	require.NoError(t, o.Complete(time.Now()))

	view := newAssembler(weather).Assemble(t.Context(), o)

	require.NotNil(t, view.WeatherInfo)
	assert.Equal(t, "Weather in Oslo: 4.0°C, Light rain", *view.WeatherInfo)
	assert.Equal(t, "COMPLETED", view.Status)
	assert.NotNil(t, view.CompletedAt)
	weather.AssertExpectations(t)
}

func TestAssembler_Assemble_WeatherFailureIsDegraded(t *testing.T) {
	weather := new(MockWeatherProvider)
	weather.On("Describe", mock.Anything, "Oslo").Return("", errors.New("connection refused")).Once()
	o := newOrder(t)
	require.NoError(t, o.SetDeliveryAddress(kernel.NewDeliveryAddress("", "Oslo", "", "")))

	view := newAssembler(weather).Assemble(t.Context(), o)

	require.NotNil(t, view.WeatherInfo)
	assert.Equal(t, views.WeatherUnavailable, *view.WeatherInfo)
}

func TestAssembler_Assemble_WeatherCallIsBounded(t *testing.T) {
	weather := new(MockWeatherProvider)
	weather.On("Describe", mock.Anything, "Oslo").
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return("", context.DeadlineExceeded).Once()
	o := newOrder(t)
	require.NoError(t, o.SetDeliveryAddress(kernel.NewDeliveryAddress("", "Oslo", "", "")))

	start := time.Now()
	view := newAssembler(weather).Assemble(t.Context(), o)

	assert.Less(t, time.Since(start), 2*time.Second)
	require.NotNil(t, view.WeatherInfo)
	assert.Equal(t, views.WeatherUnavailable, *view.WeatherInfo)
}

func TestAssembler_AssembleAll_KeepsOrder(t *testing.T) {
	weather := new(MockWeatherProvider)
	first, second := newOrder(t), newOrder(t)

	result := newAssembler(weather).AssembleAll(t.Context(), []*order.Order{first, second})

	require.Len(t, result, 2)
	assert.Equal(t, first.ID(), result[0].OrderID)
	assert.Equal(t, second.ID(), result[1].OrderID)
	assert.Empty(t, newAssembler(weather).AssembleAll(t.Context(), nil))
}

func TestAssembler_Assemble_IgnoresCallerCancellation(t *testing.T) {
	weather := new(MockWeatherProvider)
	weather.On("Describe", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() == nil
	}), "Oslo").Return("Weather in Oslo: 1.0°C, Snow", nil).Once()
	o := newOrder(t)
	require.NoError(t, o.SetDeliveryAddress(kernel.NewDeliveryAddress("", "Oslo", "", "")))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	view := newAssembler(weather).Assemble(ctx, o)

	require.NotNil(t, view.WeatherInfo)
	assert.Equal(t, "Weather in Oslo: 1.0°C, Snow", *view.WeatherInfo)
	weather.AssertExpectations(t)
}
