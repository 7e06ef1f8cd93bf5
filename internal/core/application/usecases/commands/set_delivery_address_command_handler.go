package commands

import "context"

type SetDeliveryAddressCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetDeliveryAddressCommandHandler(uowFactory OrderUoWFactory) SetDeliveryAddressCommandHandler {
	return SetDeliveryAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ObjectNotFoundError for unknown orders and errs.StateIsInvalidError
// for completed ones.
func (h SetDeliveryAddressCommandHandler) Handle(ctx context.Context, cmd SetDeliveryAddressCommand) error {
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

	if err = o.SetDeliveryAddress(cmd.Address()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
