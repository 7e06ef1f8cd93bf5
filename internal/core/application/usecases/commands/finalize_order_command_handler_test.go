package commands_test

import (
	"context"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, details string) (string, error) {
	args := m.Called(ctx, details)
	return args.String(0), args.Error(1)
}

func TestFinalizeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newStoredOrder(42)
	cmd, _ := commands.NewFinalizeOrderCommand(o.ID(), "card=4242")
	factory, uow, repo := newMocks()
	payments := new(MockPaymentGateway)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		payments.On("ProcessPayment", ctx, "card=4242").Return("tx-1", nil).Once(),
		repo.On("Update", ctx, mock.MatchedBy(func(got *order.Order) bool {
			return got.Status() == order.Completed && got.CompletedAt() != nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	txID, err := commands.NewFinalizeOrderCommandHandler(factory, payments).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "tx-1", txID)
	payments.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestFinalizeOrderCommandHandler_Handle_PaymentDeclined(t *testing.T) {
	ctx := t.Context()
	o := newStoredOrder(42)
	cmd, _ := commands.NewFinalizeOrderCommand(o.ID(), "")
	factory, uow, repo := newMocks()
	payments := new(MockPaymentGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	payments.On("ProcessPayment", ctx, "").Return("", ports.ErrPaymentDeclined).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	txID, err := commands.NewFinalizeOrderCommandHandler(factory, payments).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrPaymentDeclined)
	assert.Empty(t, txID)
	assert.Equal(t, order.Ongoing, o.Status())
	assert.Nil(t, o.CompletedAt())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestFinalizeOrderCommandHandler_Handle_AlreadyCompleted(t *testing.T) {
	ctx := t.Context()
	o := newStoredOrder(42)
	require.NoError(t, o.Complete(o.CreatedAt()))
	completedAt := *o.CompletedAt()
	cmd, _ := commands.NewFinalizeOrderCommand(o.ID(), "card=4242")
	factory, uow, repo := newMocks()
	payments := new(MockPaymentGateway)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewFinalizeOrderCommandHandler(factory, payments).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Equal(t, completedAt, *o.CompletedAt())
	payments.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything)
}

func TestFinalizeOrderCommandHandler_Handle_SecondFinalizeIsNotCharged(t *testing.T) {
	ctx := t.Context()
	o := newStoredOrder(42)
	cmd, _ := commands.NewFinalizeOrderCommand(o.ID(), "card=4242")
	payments := new(MockPaymentGateway)
	payments.On("ProcessPayment", ctx, "card=4242").Return("tx-1", nil).Once()

	// The winner holds the row lock until it commits; the other caller reads the order
	// only afterwards and finds it COMPLETED.
	winnerFactory, winnerUoW, winnerRepo := newMocks()
	winnerUoW.On("Begin", ctx).Return(nil).Once()
	winnerUoW.On("OrderRepository").Return(winnerRepo).Once()
	winnerRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	winnerRepo.On("Update", ctx, o).Return(nil).Once()
	winnerUoW.On("Commit", ctx).Return(nil).Once()
	winnerUoW.On("Rollback", ctx).Return(nil).Once()

	loserFactory, loserUoW, loserRepo := newMocks()
	loserUoW.On("Begin", ctx).Return(nil).Once()
	loserUoW.On("OrderRepository").Return(loserRepo).Once()
	loserRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	loserUoW.On("Rollback", ctx).Return(nil).Once()

	txID, err := commands.NewFinalizeOrderCommandHandler(winnerFactory, payments).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "tx-1", txID)

	txID, err = commands.NewFinalizeOrderCommandHandler(loserFactory, payments).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Empty(t, txID)
	payments.AssertNumberOfCalls(t, "ProcessPayment", 1)
	winnerRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	loserRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	loserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFinalizeOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	_, err := commands.NewFinalizeOrderCommandHandler(new(MockOrderUoWFactory), new(MockPaymentGateway)).
		Handle(t.Context(), commands.FinalizeOrderCommand{})

	require.ErrorIs(t, err, commands.ErrFinalizeOrderCommandIsNotConstructed)
}
