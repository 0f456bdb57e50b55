package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"
)

type legKey struct {
	orderID string
	t       assignment.Type
}

// ReorderStopsCommandHandler applies positions to stops currently on the
// truckload. Positions naming legs that are not on it are skipped.
type ReorderStopsCommandHandler struct {
	uowFactory UoWFactory
}

func NewReorderStopsCommandHandler(uowFactory UoWFactory) ReorderStopsCommandHandler {
	return ReorderStopsCommandHandler{uowFactory: uowFactory}
}

func (h ReorderStopsCommandHandler) Handle(ctx context.Context, cmd ReorderStopsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return errs.WrapTx("reorder stops", h.handle(ctx, cmd))
}

func (h ReorderStopsCommandHandler) handle(ctx context.Context, cmd ReorderStopsCommand) error {
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

	current, err := stops.ListByTruckload(ctx, cmd.TruckloadID())
	if err != nil {
		return err
	}

	byLeg := make(map[legKey]*assignment.Assignment, len(current))
	for _, s := range current {
		byLeg[legKey{s.OrderID().String(), s.Type()}] = s
	}

	for _, p := range cmd.Positions() {
		s, ok := byLeg[legKey{p.OrderID.String(), p.AssignmentType}]
		if !ok || s.SequenceNumber() == p.SequenceNumber {
			continue
		}
		if err = s.MoveTo(p.SequenceNumber); err != nil {
			return err
		}
		if err = stops.Update(ctx, s); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
