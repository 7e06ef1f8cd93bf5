package commands_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpsertOrderItemCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewUpsertOrderItemCommand(kernel.NewUUID(), 7, 3)

		require.NoError(t, err)
		assert.Equal(t, int64(7), cmd.ProductID())
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		for _, qty := range []int{0, -2} {
			_, err := commands.NewUpsertOrderItemCommand(kernel.NewUUID(), 7, qty)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "quantity")
		}
	})

	t.Run("non-positive product", func(t *testing.T) {
		_, err := commands.NewUpsertOrderItemCommand(kernel.NewUUID(), 0, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpsertOrderItemCommandHandler_Handle(t *testing.T) {
	t.Run("upserts item and commits", func(t *testing.T) {
		ctx := t.Context()
		o := newStoredOrder(42)
		cmd, _ := commands.NewUpsertOrderItemCommand(o.ID(), 7, 5)
		factory, uow, repo := newMocks()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err := commands.NewUpsertOrderItemCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 5, o.Items()[0].Quantity())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewUpsertOrderItemCommand(id, 7, 5)
		factory, uow, repo := newMocks()
		notFound := errs.NewObjectNotFoundError("order", id.String())

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, notFound).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewUpsertOrderItemCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("completed order", func(t *testing.T) {
		ctx := t.Context()
		o := newStoredOrder(42)
		require.NoError(t, o.Complete(o.CreatedAt()))
		cmd, _ := commands.NewUpsertOrderItemCommand(o.ID(), 7, 5)
		factory, uow, repo := newMocks()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewUpsertOrderItemCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestSetDeliveryAddressCommandHandler_Handle(t *testing.T) {
	t.Run("replaces address", func(t *testing.T) {
		ctx := t.Context()
		o := newStoredOrder(42)
		address := kernel.NewDeliveryAddress("Storgatan 1", "Oslo", "0150", "NO")
		cmd, err := commands.NewSetDeliveryAddressCommand(o.ID(), address)
		require.NoError(t, err)
		factory, uow, repo := newMocks()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		err = commands.NewSetDeliveryAddressCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, o.DeliveryAddress().IsEqual(address))
		uow.AssertExpectations(t)
	})

	t.Run("version conflict is returned unchanged", func(t *testing.T) {
		ctx := t.Context()
		o := newStoredOrder(42)
		cmd, _ := commands.NewSetDeliveryAddressCommand(o.ID(), kernel.NewDeliveryAddress("", "", "", ""))
		factory, uow, repo := newMocks()
		conflict := errs.NewVersionIsInvalidError("order", errors.New("stale"))

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
		repo.On("Update", ctx, o).Return(conflict).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewSetDeliveryAddressCommandHandler(factory).Handle(ctx, cmd)

		assert.Same(t, conflict, err)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("zero value command", func(t *testing.T) {
		err := commands.NewSetDeliveryAddressCommandHandler(new(MockOrderUoWFactory)).
			Handle(t.Context(), commands.SetDeliveryAddressCommand{})

		require.ErrorIs(t, err, commands.ErrSetDeliveryAddressCommandIsNotConstructed)
	})
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	t.Run("deletes order in any status", func(t *testing.T) {
		for _, completed := range []bool{false, true} {
			ctx := t.Context()
			o := newStoredOrder(42)
			if completed {
				require.NoError(t, o.Complete(o.CreatedAt()))
				o.ClearDomainEvents()
			}
			cmd, _ := commands.NewCancelOrderCommand(o.ID())
			factory, uow, repo := newMocks()

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				repo.On("Delete", ctx, o).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

			require.NoError(t, err)
			events := o.DomainEvents()
			require.Len(t, events, 1)
			assert.Equal(t, order.EventCancelled, events[0].Type)
			repo.AssertExpectations(t)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewCancelOrderCommand(id)
		factory, uow, repo := newMocks()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		err := commands.NewCancelOrderCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
