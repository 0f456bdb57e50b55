package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// UnassignLegCommandHandler deletes a stop, closes the gap it leaves so the
// truckload's stops stay numbered 1..N, and rederives the order.
type UnassignLegCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.StopSequencer
}

func NewUnassignLegCommandHandler(uowFactory UoWFactory) UnassignLegCommandHandler {
	return UnassignLegCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewStopSequencer(),
	}
}

func (h UnassignLegCommandHandler) Handle(ctx context.Context, cmd UnassignLegCommand) (LegProjection, error) {
	if err := cmd.Validate(); err != nil {
		return LegProjection{}, err
	}

	res, err := h.handle(ctx, cmd)
	return res, errs.WrapTx("unassign leg", err)
}

func (h UnassignLegCommandHandler) handle(ctx context.Context, cmd UnassignLegCommand) (LegProjection, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LegProjection{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	stops := uow.AssignmentRepository()

	if _, err := uow.TruckloadRepository().GetForUpdate(ctx, cmd.TruckloadID()); err != nil {
		return LegProjection{}, err
	}

	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return LegProjection{}, err
	}

	stop, err := stops.FindByOrderLeg(ctx, cmd.OrderID(), cmd.AssignmentType())
	if errors.Is(err, errs.ErrObjectNotFound) || (err == nil && !stop.TruckloadID().IsEqual(cmd.TruckloadID())) {
		return project(o), uow.Commit(ctx)
	}
	if err != nil {
		return LegProjection{}, err
	}

	if err = stops.Delete(ctx, stop.ID()); err != nil {
		return LegProjection{}, err
	}

	remaining, err := stops.ListByTruckload(ctx, cmd.TruckloadID())
	if err != nil {
		return LegProjection{}, err
	}

	moved, err := h.sequencer.Resequence(remaining)
	if err != nil {
		return LegProjection{}, err
	}
	for _, s := range moved {
		if err = stops.Update(ctx, s); err != nil {
			return LegProjection{}, err
		}
	}

	if err = reconcileOrder(ctx, orders, stops, o, cmd.AssignmentType()); err != nil {
		return LegProjection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LegProjection{}, err
	}

	return project(o), nil
}
