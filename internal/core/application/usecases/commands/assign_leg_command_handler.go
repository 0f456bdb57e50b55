package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// AssignLegCommandHandler inserts a stop and rederives the order it belongs to.
// A leg already bound anywhere is a ConflictError and nothing changes.
// An explicit position is an insert: later stops move down so the truckload
// stays numbered 1..N.
type AssignLegCommandHandler struct {
	uowFactory UoWFactory
	sequencer  services.StopSequencer
}

func NewAssignLegCommandHandler(uowFactory UoWFactory) AssignLegCommandHandler {
	return AssignLegCommandHandler{
		uowFactory: uowFactory,
		sequencer:  services.NewStopSequencer(),
	}
}

func (h AssignLegCommandHandler) Handle(ctx context.Context, cmd AssignLegCommand) (LegProjection, error) {
	if err := cmd.Validate(); err != nil {
		return LegProjection{}, err
	}

	res, err := h.handle(ctx, cmd)
	return res, errs.WrapTx("assign leg", err)
}

func (h AssignLegCommandHandler) handle(ctx context.Context, cmd AssignLegCommand) (LegProjection, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LegProjection{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckloads := uow.TruckloadRepository()
	orders := uow.OrderRepository()
	stops := uow.AssignmentRepository()

	if _, err := truckloads.GetForUpdate(ctx, cmd.TruckloadID()); err != nil {
		return LegProjection{}, err
	}

	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return LegProjection{}, err
	}

	existing, err := stops.FindByOrderLeg(ctx, cmd.OrderID(), cmd.AssignmentType())
	switch {
	case err == nil:
		return LegProjection{}, errs.NewConflictError("order leg", existing.OrderID().String()+"/"+existing.Type().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return LegProjection{}, err
	}

	current, err := stops.ListByTruckload(ctx, cmd.TruckloadID())
	if err != nil {
		return LegProjection{}, err
	}

	seq, shifted, err := h.sequencer.InsertAt(current, cmd.SequenceNumber())
	if err != nil {
		return LegProjection{}, err
	}

	for _, s := range shifted {
		if err = stops.Update(ctx, s); err != nil {
			return LegProjection{}, err
		}
	}

	stop, err := assignment.NewAssignment(
		kernel.NewUUID(),
		cmd.TruckloadID(),
		cmd.OrderID(),
		cmd.AssignmentType(),
		seq,
		cmd.ExcludeFromLoadValue(),
	)
	if err != nil {
		return LegProjection{}, err
	}

	if err = stops.Add(ctx, stop); err != nil {
		return LegProjection{}, err
	}

	if err = reconcileOrder(ctx, orders, stops, o, cmd.AssignmentType()); err != nil {
		return LegProjection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LegProjection{}, err
	}

	return project(o), nil
}
