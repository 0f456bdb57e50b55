package commands

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// LegProjection is the order state returned by assign and unassign.
type LegProjection struct {
	OrderStatus order.Status
	IsTransfer  bool
}

func project(o *order.Order) LegProjection {
	return LegProjection{OrderStatus: o.Status(), IsTransfer: o.IsTransfer()}
}

// reconcileOrder rederives status and transfer flag from every leg currently
// bound to o and persists the result.
func reconcileOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	stops ports.AssignmentRepository,
	o *order.Order,
	changed assignment.Type,
) error {
	bound, err := stops.ListByOrder(ctx, o.ID())
	if err != nil {
		return err
	}

	legs := make([]assignment.Leg, 0, len(bound))
	for _, a := range bound {
		legs = append(legs, a.Leg())
	}

	if err = o.ReconcileLegs(legs, changed); err != nil {
		return err
	}

	return orders.Update(ctx, o)
}
