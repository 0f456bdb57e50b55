package assignment

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment binds one leg of an order to a stop on a truckload.
//
// Invariants:
//   - at most one assignment exists per (order, type) across all truckloads
//   - sequence numbers start at 1
//
// Density of sequence numbers within a truckload is maintained by the
// StopSequencer domain service, not by the aggregate itself.
type Assignment struct {
	id                   kernel.UUID
	truckloadID          kernel.UUID
	orderID              kernel.UUID
	assignmentType       Type
	sequenceNumber       int
	excludeFromLoadValue bool
	isCompleted          bool

	isConstructed bool
}

// NewAssignment creates a fresh, not yet completed stop.
//
// Example:
//
//	a, err := assignment.NewAssignment(kernel.NewUUID(), truckloadID, orderID, assignment.Pickup, 1, false)
func NewAssignment(
	id, truckloadID, orderID kernel.UUID,
	assignmentType Type,
	sequenceNumber int,
	excludeFromLoadValue bool,
) (*Assignment, error) {
	a := &Assignment{
		excludeFromLoadValue: excludeFromLoadValue,
		isConstructed:        true,
	}

	if err := errors.Join(
		setUUID(&a.id, id),
		setUUID(&a.truckloadID, truckloadID),
		setUUID(&a.orderID, orderID),
		a.setType(assignmentType),
		a.setSequenceNumber(sequenceNumber),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment rebuilds a persisted assignment.
func RestoreAssignment(
	id, truckloadID, orderID kernel.UUID,
	assignmentType Type,
	sequenceNumber int,
	excludeFromLoadValue bool,
	isCompleted bool,
) (*Assignment, error) {
	a, err := NewAssignment(id, truckloadID, orderID, assignmentType, sequenceNumber, excludeFromLoadValue)
	if err != nil {
		return nil, err
	}
	a.isCompleted = isCompleted
	return a, nil
}

func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

func (a *Assignment) ID() kernel.UUID {
	return a.id
}

func (a *Assignment) TruckloadID() kernel.UUID {
	return a.truckloadID
}

func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

func (a *Assignment) Type() Type {
	return a.assignmentType
}

func (a *Assignment) SequenceNumber() int {
	return a.sequenceNumber
}

// ExcludeFromLoadValue reports whether the stop is left out of the
// truckload's freight value for split-load accounting.
func (a *Assignment) ExcludeFromLoadValue() bool {
	return a.excludeFromLoadValue
}

func (a *Assignment) IsCompleted() bool {
	return a.isCompleted
}

// Leg projects the assignment for order status derivation.
func (a *Assignment) Leg() Leg {
	return Leg{TruckloadID: a.truckloadID.String(), Type: a.assignmentType}
}

// MoveTo places the stop at another position. Uniqueness and density of the
// resulting order are the caller's concern.
func (a *Assignment) MoveTo(sequenceNumber int) error {
	return a.setSequenceNumber(sequenceNumber)
}

func (a *Assignment) SetExcludeFromLoadValue(exclude bool) {
	a.excludeFromLoadValue = exclude
}

func (a *Assignment) MarkCompleted() {
	a.isCompleted = true
}

func (a *Assignment) Reopen() {
	a.isCompleted = false
}

func setUUID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func (a *Assignment) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.assignmentType = t
	return nil
}

func (a *Assignment) setSequenceNumber(n int) error {
	if n < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence number", fmt.Errorf("%d is not greater than 0", n))
	}
	a.sequenceNumber = n
	return nil
}
