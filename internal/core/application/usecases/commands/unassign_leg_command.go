package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUnassignLegCommandIsNotConstructed = errors.New(
	"UnassignLegCommand must be created via NewUnassignLegCommand constructor",
)

// UnassignLegCommand removes an order leg from a truckload. Removing a leg
// that is not on the truckload succeeds without changes.
type UnassignLegCommand struct { //nolint:recvcheck //using for validation
	truckloadID    kernel.UUID
	orderID        kernel.UUID
	assignmentType assignment.Type

	guard guard.ConstructorGuard
}

func NewUnassignLegCommand(truckloadID, orderID kernel.UUID, assignmentType assignment.Type) (UnassignLegCommand, error) {
	if err := errors.Join(truckloadID.Validate(), orderID.Validate(), assignmentType.Validate()); err != nil {
		return UnassignLegCommand{}, err
	}

	return UnassignLegCommand{
		truckloadID:    truckloadID,
		orderID:        orderID,
		assignmentType: assignmentType,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignLegCommand) Validate() error {
	return c.guard.Validate(ErrUnassignLegCommandIsNotConstructed)
}

func (c UnassignLegCommand) TruckloadID() kernel.UUID        { return c.truckloadID }
func (c UnassignLegCommand) OrderID() kernel.UUID            { return c.orderID }
func (c UnassignLegCommand) AssignmentType() assignment.Type { return c.assignmentType }
