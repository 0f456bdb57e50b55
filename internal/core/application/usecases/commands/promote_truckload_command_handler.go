package commands

import (
	"context"

	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/core/domain/model/truckload"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// PromoteResult reports the number a truckload carries after promotion.
type PromoteResult struct {
	BillOfLading string
	Status       truckload.Status
}

// PromoteTruckloadCommandHandler activates a draft truckload. A truckload
// without a bill of lading gets the next number of the current month, read and
// written while holding the month's advisory lock so concurrent promotions
// never issue the same number.
type PromoteTruckloadCommandHandler struct {
	uowFactory TruckloadUoWFactory
	clock      ports.Clock
	sequencer  services.BOLSequencer
}

func NewPromoteTruckloadCommandHandler(uowFactory TruckloadUoWFactory, clock ports.Clock) PromoteTruckloadCommandHandler {
	return PromoteTruckloadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		sequencer:  services.NewBOLSequencer(),
	}
}

func (h PromoteTruckloadCommandHandler) Handle(ctx context.Context, cmd PromoteTruckloadCommand) (PromoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return PromoteResult{}, err
	}

	res, err := h.handle(ctx, cmd)
	return res, errs.WrapTx("promote truckload", err)
}

func (h PromoteTruckloadCommandHandler) handle(ctx context.Context, cmd PromoteTruckloadCommand) (PromoteResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PromoteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TruckloadRepository()

	tl, err := repo.GetForUpdate(ctx, cmd.TruckloadID())
	if err != nil {
		return PromoteResult{}, err
	}

	if err = tl.Promote(); err != nil {
		return PromoteResult{}, err
	}

	if tl.NeedsBillOfLading() {
		now := h.clock.Now()
		prefix := bol.Prefix(now)

		if err = repo.LockBillOfLadingPrefix(ctx, prefix); err != nil {
			return PromoteResult{}, err
		}

		issued, listErr := repo.ListBillOfLadingNumbers(ctx, prefix)
		if listErr != nil {
			return PromoteResult{}, listErr
		}

		next, seqErr := h.sequencer.Next(now, issued)
		if seqErr != nil {
			return PromoteResult{}, seqErr
		}

		if err = tl.AssignBillOfLading(next); err != nil {
			return PromoteResult{}, err
		}
	}

	if err = repo.Update(ctx, tl); err != nil {
		return PromoteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PromoteResult{}, err
	}

	return PromoteResult{BillOfLading: tl.BillOfLading().String(), Status: tl.Status()}, nil
}
