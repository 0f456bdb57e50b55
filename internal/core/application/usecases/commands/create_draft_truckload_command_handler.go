package commands

import (
	"context"

	"dispatch/internal/core/domain/model/truckload"
	"dispatch/internal/pkg/errs"
)

type CreateDraftTruckloadCommandHandler struct {
	uowFactory TruckloadUoWFactory
}

func NewCreateDraftTruckloadCommandHandler(uowFactory TruckloadUoWFactory) CreateDraftTruckloadCommandHandler {
	return CreateDraftTruckloadCommandHandler{uowFactory: uowFactory}
}

func (h CreateDraftTruckloadCommandHandler) Handle(ctx context.Context, cmd CreateDraftTruckloadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tl, err := truckload.NewDraftTruckload(cmd.TruckloadID(), cmd.Driver(), cmd.StartDate(), cmd.EndDate(), cmd.TrailerNumber())
	if err != nil {
		return err
	}

	return errs.WrapTx("create draft truckload", h.persist(ctx, tl))
}

func (h CreateDraftTruckloadCommandHandler) persist(ctx context.Context, tl *truckload.Truckload) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TruckloadRepository().Add(ctx, tl); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
