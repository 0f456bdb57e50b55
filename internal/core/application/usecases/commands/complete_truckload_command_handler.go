package commands

import (
	"context"
	"slices"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// CompleteTruckloadCommandHandler closes an active truckload.
//
// Business rules:
//   - every stop on the truckload is marked completed
//   - goods of orders picked up on this truckload are marked picked up
//   - orders delivered by this truckload are completed as a whole, goods and status
//   - every order on the truckload is locked in ascending id order after the
//     truckload and before any goods row is written
type CompleteTruckloadCommandHandler struct {
	uowFactory UoWFactory
}

func NewCompleteTruckloadCommandHandler(uowFactory UoWFactory) CompleteTruckloadCommandHandler {
	return CompleteTruckloadCommandHandler{uowFactory: uowFactory}
}

func (h CompleteTruckloadCommandHandler) Handle(ctx context.Context, cmd CompleteTruckloadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return errs.WrapTx("complete truckload", h.handle(ctx, cmd))
}

func (h CompleteTruckloadCommandHandler) handle(ctx context.Context, cmd CompleteTruckloadCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckloads := uow.TruckloadRepository()
	stops := uow.AssignmentRepository()
	orders := uow.OrderRepository()
	goods := uow.GoodsRepository()

	tl, err := truckloads.GetForUpdate(ctx, cmd.TruckloadID())
	if err != nil {
		return err
	}

	if err = tl.Complete(); err != nil {
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
		if s.IsCompleted() {
			continue
		}
		s.MarkCompleted()
		if err = stops.Update(ctx, s); err != nil {
			return err
		}
	}

	pickups, deliveries := ordersByLeg(bound)

	locked, err := lockOrders(ctx, orders, pickups, deliveries)
	if err != nil {
		return err
	}

	if err = goods.SetPickedUp(ctx, pickups, true); err != nil {
		return err
	}

	for _, id := range deliveries {
		if err = completeOrder(ctx, orders, goods, locked[id]); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// ordersByLeg splits the orders on a truckload by the leg that put them there.
// Each slice is deduplicated and sorted ascending, which is also the order
// locks are taken in.
func ordersByLeg(stops []*assignment.Assignment) (pickups, deliveries []kernel.UUID) {
	for _, s := range stops {
		switch s.Type() {
		case assignment.Pickup:
			pickups = append(pickups, s.OrderID())
		case assignment.Delivery:
			deliveries = append(deliveries, s.OrderID())
		case assignment.Unknown:
		}
	}
	return sortedUnique(pickups), sortedUnique(deliveries)
}

// lockOrders locks the union of the given id sets in ascending id order.
func lockOrders(ctx context.Context, orders ports.OrderRepository, sets ...[]kernel.UUID) (map[kernel.UUID]*order.Order, error) {
	var all []kernel.UUID
	for _, ids := range sets {
		all = append(all, ids...)
	}

	locked := make(map[kernel.UUID]*order.Order, len(all))
	for _, id := range sortedUnique(all) {
		o, err := orders.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = o
	}
	return locked, nil
}

func sortedUnique(ids []kernel.UUID) []kernel.UUID {
	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return slices.CompactFunc(ids, kernel.UUID.IsEqual)
}
