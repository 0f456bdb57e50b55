package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetLoadValueExclusionCommandIsNotConstructed = errors.New(
	"SetLoadValueExclusionCommand must be created via NewSetLoadValueExclusionCommand constructor",
)

// SetLoadValueExclusionCommand marks whether a stop counts toward the
// truckload's load value in split-load pay.
type SetLoadValueExclusionCommand struct { //nolint:recvcheck //using for validation
	truckloadID    kernel.UUID
	orderID        kernel.UUID
	assignmentType assignment.Type
	exclude        bool

	guard guard.ConstructorGuard
}

func NewSetLoadValueExclusionCommand(
	truckloadID, orderID kernel.UUID,
	assignmentType assignment.Type,
	exclude bool,
) (SetLoadValueExclusionCommand, error) {
	if err := errors.Join(truckloadID.Validate(), orderID.Validate(), assignmentType.Validate()); err != nil {
		return SetLoadValueExclusionCommand{}, err
	}

	return SetLoadValueExclusionCommand{
		truckloadID:    truckloadID,
		orderID:        orderID,
		assignmentType: assignmentType,
		exclude:        exclude,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c SetLoadValueExclusionCommand) Validate() error {
	return c.guard.Validate(ErrSetLoadValueExclusionCommandIsNotConstructed)
}

func (c SetLoadValueExclusionCommand) TruckloadID() kernel.UUID        { return c.truckloadID }
func (c SetLoadValueExclusionCommand) OrderID() kernel.UUID            { return c.orderID }
func (c SetLoadValueExclusionCommand) AssignmentType() assignment.Type { return c.assignmentType }
func (c SetLoadValueExclusionCommand) Exclude() bool                   { return c.exclude }
