package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

type SetLoadValueExclusionCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetLoadValueExclusionCommandHandler(uowFactory UoWFactory) SetLoadValueExclusionCommandHandler {
	return SetLoadValueExclusionCommandHandler{uowFactory: uowFactory}
}

func (h SetLoadValueExclusionCommandHandler) Handle(ctx context.Context, cmd SetLoadValueExclusionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return errs.WrapTx("set load value exclusion", h.handle(ctx, cmd))
}

func (h SetLoadValueExclusionCommandHandler) handle(ctx context.Context, cmd SetLoadValueExclusionCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stops := uow.AssignmentRepository()

	if _, err := uow.TruckloadRepository().GetForUpdate(ctx, cmd.TruckloadID()); err != nil {
		return err
	}

	stop, err := stops.FindByOrderLeg(ctx, cmd.OrderID(), cmd.AssignmentType())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if stop == nil || !stop.TruckloadID().IsEqual(cmd.TruckloadID()) {
		return errs.NewObjectNotFoundError("assignment", cmd.OrderID().String()+"/"+cmd.AssignmentType().String())
	}

	if stop.ExcludeFromLoadValue() == cmd.Exclude() {
		return uow.Commit(ctx)
	}

	stop.SetExcludeFromLoadValue(cmd.Exclude())
	if err = stops.Update(ctx, stop); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
