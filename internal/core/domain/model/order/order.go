package order

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a shipment request with a pickup leg and a delivery leg.
//
// Order follows these invariants:
//   - isTransfer is true iff exactly one pickup and one delivery leg are bound,
//     both to the same truckload
//   - status and isTransfer are recomputed from the full leg set after every
//     assign or unassign, never patched incrementally
//   - a completed order stays completed; its transfer flag is still recomputed
type Order struct {
	id               kernel.UUID
	pickupCustomer   string
	deliveryCustomer string
	status           Status
	isTransfer       bool

	isConstructed bool
}

// NewOrder creates an unassigned order.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Acme Lumber", "Northside Builders")
//	if err != nil {
//	    return err
//	}
func NewOrder(id kernel.UUID, pickupCustomer, deliveryCustomer string) (*Order, error) {
	o := &Order{
		status:        Unassigned,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		setCustomer(&o.pickupCustomer, "pickup customer", pickupCustomer),
		setCustomer(&o.deliveryCustomer, "delivery customer", deliveryCustomer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from its persisted state.
func RestoreOrder(
	id kernel.UUID,
	pickupCustomer, deliveryCustomer string,
	status Status,
	isTransfer bool,
) (*Order, error) {
	o, err := NewOrder(id, pickupCustomer, deliveryCustomer)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.isTransfer = isTransfer
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) PickupCustomer() string {
	return o.pickupCustomer
}

func (o *Order) DeliveryCustomer() string {
	return o.deliveryCustomer
}

func (o *Order) Status() Status {
	return o.status
}

// IsTransfer reports whether both legs ride on the same truckload.
func (o *Order) IsTransfer() bool {
	return o.isTransfer
}

// ReconcileLegs recomputes status and the transfer flag from legs, the
// complete set of assignments currently bound to the order. changed is the
// leg the triggering operation touched: the leg just assigned, or the leg
// just removed.
//
// Example:
//
//	legs := []assignment.Leg{{TruckloadID: a, Type: assignment.Pickup}, {TruckloadID: a, Type: assignment.Delivery}}
//	_ = o.ReconcileLegs(legs, assignment.Delivery)
//	o.Status()     // DeliveryAssigned
//	o.IsTransfer() // true
func (o *Order) ReconcileLegs(legs []assignment.Leg, changed assignment.Type) error {
	if err := changed.Validate(); err != nil {
		return err
	}

	pickups, deliveries := countLegs(legs)
	o.isTransfer = IsTransfer(legs)

	if o.status == Completed {
		return nil
	}

	o.status = statusForLegs(pickups, deliveries, changed)
	return nil
}

// Complete marks the order delivered. Completing twice is a no-op.
func (o *Order) Complete() {
	o.status = Completed
}

// IsTransfer applies the transfer rule to a leg set: exactly one pickup and
// one delivery, both bound to a single truckload.
func IsTransfer(legs []assignment.Leg) bool {
	pickups, deliveries := countLegs(legs)
	if pickups != 1 || deliveries != 1 {
		return false
	}

	truckloads := make(map[string]struct{}, len(legs))
	for _, l := range legs {
		truckloads[l.TruckloadID] = struct{}{}
	}
	return len(truckloads) == 1
}

// StatusMatchesLegs reports whether a stored status is one the derivation
// rule could have produced for legs.
func StatusMatchesLegs(status Status, legs []assignment.Leg) bool {
	if status == Completed {
		return true
	}

	pickups, deliveries := countLegs(legs)
	if pickups > 0 && deliveries > 0 {
		return status == PickupAssigned || status == DeliveryAssigned
	}
	return status == statusForLegs(pickups, deliveries, assignment.Pickup)
}

func countLegs(legs []assignment.Leg) (pickups, deliveries int) {
	for _, l := range legs {
		switch l.Type {
		case assignment.Pickup:
			pickups++
		case assignment.Delivery:
			deliveries++
		case assignment.Unknown:
		}
	}
	return pickups, deliveries
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func setCustomer(dst *string, param, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}
