package commands

import (
	"context"

	"dispatch/internal/pkg/errs"
)

// UncompleteTruckloadCommandHandler reopens a completed truckload.
//
// Each leg reverts only its own flag: pickup stops clear picked up, delivery
// stops clear delivered. An order whose pickup flags were set when its
// delivery completed keeps them. Order status is not touched, but every order
// on the truckload is locked in ascending id order before goods change.
type UncompleteTruckloadCommandHandler struct {
	uowFactory UoWFactory
}

func NewUncompleteTruckloadCommandHandler(uowFactory UoWFactory) UncompleteTruckloadCommandHandler {
	return UncompleteTruckloadCommandHandler{uowFactory: uowFactory}
}

func (h UncompleteTruckloadCommandHandler) Handle(ctx context.Context, cmd UncompleteTruckloadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return errs.WrapTx("uncomplete truckload", h.handle(ctx, cmd))
}

func (h UncompleteTruckloadCommandHandler) handle(ctx context.Context, cmd UncompleteTruckloadCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckloads := uow.TruckloadRepository()
	stops := uow.AssignmentRepository()
	goods := uow.GoodsRepository()

	tl, err := truckloads.GetForUpdate(ctx, cmd.TruckloadID())
	if err != nil {
		return err
	}

	if err = tl.Uncomplete(); err != nil {
		return err
	}

	if err = truckloads.Update(ctx, tl); err != nil {
		return err
	}

	bound, err := stops.ListByTruckload(ctx, cmd.TruckloadID())
	if err != nil {
		return err
	}

	for _, s := range bound {
		if !s.IsCompleted() {
			continue
		}
		s.Reopen()
		if err = stops.Update(ctx, s); err != nil {
			return err
		}
	}

	pickups, deliveries := ordersByLeg(bound)

	if _, err = lockOrders(ctx, uow.OrderRepository(), pickups, deliveries); err != nil {
		return err
	}

	if err = goods.SetPickedUp(ctx, pickups, false); err != nil {
		return err
	}

	if err = goods.SetDelivered(ctx, deliveries, false); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
