package commands

import "context"

type UpsertOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpsertOrderItemCommandHandler(uowFactory OrderUoWFactory) UpsertOrderItemCommandHandler {
	return UpsertOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpsertOrderItemCommandHandler) Handle(ctx context.Context, cmd UpsertOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AddOrUpdateItem(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
