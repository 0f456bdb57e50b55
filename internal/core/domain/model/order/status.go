package order

import (
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/pkg/errs"
)

// Status is the order lifecycle state as seen by dispatch.
//
// It is derived from the set of assignments bound to the order:
//
//	no legs                  -> Unassigned
//	pickup leg only          -> PickupAssigned
//	delivery leg only        -> DeliveryAssigned
//	both legs                -> status of the leg changed last
//
// Completed is entered by order completion and is never left by derivation.
type Status int

const (
	Unknown Status = iota
	Unassigned
	PickupAssigned
	DeliveryAssigned
	Completed
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is not persisted
	return map[Status]string{
		Unassigned:       "unassigned",
		PickupAssigned:   "pickup_assigned",
		DeliveryAssigned: "delivery_assigned",
		Completed:        "completed",
	}
}

// ParseStatus maps the persisted column value to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// statusForLegs returns the derived status given leg counts and the leg
// touched by the triggering operation.
func statusForLegs(pickups, deliveries int, changed assignment.Type) Status {
	switch {
	case pickups == 0 && deliveries == 0:
		return Unassigned
	case deliveries == 0:
		return PickupAssigned
	case pickups == 0:
		return DeliveryAssigned
	case changed == assignment.Delivery:
		return DeliveryAssigned
	default:
		return PickupAssigned
	}
}
