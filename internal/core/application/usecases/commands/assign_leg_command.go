package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// AppendSequence asks AssignLeg to place the stop after the truckload's last one.
const AppendSequence = 0

var ErrAssignLegCommandIsNotConstructed = errors.New(
	"AssignLegCommand must be created via NewAssignLegCommand constructor",
)

// AssignLegCommand binds one leg of an order to a stop on a truckload.
//
// Example:
//
//	cmd, err := NewAssignLegCommand(truckloadID, orderID, assignment.Pickup, AppendSequence, false)
//	projection, err := handler.Handle(ctx, cmd)
//	// projection.OrderStatus == order.PickupAssigned
type AssignLegCommand struct { //nolint:recvcheck //using for validation
	truckloadID          kernel.UUID
	orderID              kernel.UUID
	assignmentType       assignment.Type
	sequenceNumber       int
	excludeFromLoadValue bool

	guard guard.ConstructorGuard
}

func NewAssignLegCommand(
	truckloadID, orderID kernel.UUID,
	assignmentType assignment.Type,
	sequenceNumber int,
	excludeFromLoadValue bool,
) (AssignLegCommand, error) {
	if err := errors.Join(
		truckloadID.Validate(),
		orderID.Validate(),
		assignmentType.Validate(),
		validateSequence(sequenceNumber, AppendSequence),
	); err != nil {
		return AssignLegCommand{}, err
	}

	return AssignLegCommand{
		truckloadID:          truckloadID,
		orderID:              orderID,
		assignmentType:       assignmentType,
		sequenceNumber:       sequenceNumber,
		excludeFromLoadValue: excludeFromLoadValue,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

func (c AssignLegCommand) Validate() error {
	return c.guard.Validate(ErrAssignLegCommandIsNotConstructed)
}

func (c AssignLegCommand) TruckloadID() kernel.UUID        { return c.truckloadID }
func (c AssignLegCommand) OrderID() kernel.UUID            { return c.orderID }
func (c AssignLegCommand) AssignmentType() assignment.Type { return c.assignmentType }

// SequenceNumber is AppendSequence when the caller did not choose a position.
func (c AssignLegCommand) SequenceNumber() int { return c.sequenceNumber }

func (c AssignLegCommand) ExcludeFromLoadValue() bool { return c.excludeFromLoadValue }

func validateSequence(n, lowest int) error {
	if n < lowest {
		return errs.NewValueIsInvalidErrorWithCause("sequence number", fmt.Errorf("%d is less than %d", n, lowest))
	}
	return nil
}
