package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Type names which half of an order a stop carries.
type Type int

const (
	// Unknown catches uninitialized values.
	Unknown Type = iota
	Pickup
	Delivery
)

func getTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown has no wire name
	return map[Type]string{
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

// ParseType maps the persisted or wire form ("pickup", "delivery") to a Type.
func ParseType(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"assignment type",
		fmt.Errorf("%q is not one of pickup, delivery", s),
	)
}

// Validate rejects Unknown and out-of-range values.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("assignment type", fmt.Errorf("%d is not a valid assignment type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Leg is the projection of one assignment that order status derivation needs.
type Leg struct {
	TruckloadID string
	Type        Type
}
