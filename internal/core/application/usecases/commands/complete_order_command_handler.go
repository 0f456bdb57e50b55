package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CompleteOrderCommandHandler sets both goods flags on every skid and vinyl of
// the order and moves it to completed. Completing twice is harmless.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return errs.WrapTx("complete order", h.handle(ctx, cmd))
}

func (h CompleteOrderCommandHandler) handle(ctx context.Context, cmd CompleteOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = completeOrder(ctx, orders, uow.GoodsRepository(), o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// completeOrder expects o to be locked by the caller's transaction.
func completeOrder(ctx context.Context, orders ports.OrderRepository, goods ports.GoodsRepository, o *order.Order) error {
	ids := []kernel.UUID{o.ID()}
	if err := goods.SetPickedUp(ctx, ids, true); err != nil {
		return err
	}
	if err := goods.SetDelivered(ctx, ids, true); err != nil {
		return err
	}

	o.Complete()
	return orders.Update(ctx, o)
}
