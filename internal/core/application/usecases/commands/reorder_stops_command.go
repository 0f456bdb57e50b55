package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrReorderStopsCommandIsNotConstructed = errors.New(
	"ReorderStopsCommand must be created via NewReorderStopsCommand constructor",
)

// StopPosition moves the stop of one order leg to SequenceNumber.
type StopPosition struct {
	OrderID        kernel.UUID
	AssignmentType assignment.Type
	SequenceNumber int
}

// ReorderStopsCommand sets sequence numbers verbatim. Density and uniqueness
// of the supplied numbers are the caller's concern.
type ReorderStopsCommand struct { //nolint:recvcheck //using for validation
	truckloadID kernel.UUID
	positions   []StopPosition

	guard guard.ConstructorGuard
}

func NewReorderStopsCommand(truckloadID kernel.UUID, positions []StopPosition) (ReorderStopsCommand, error) {
	problems := []error{truckloadID.Validate()}
	for _, p := range positions {
		problems = append(problems,
			p.OrderID.Validate(),
			p.AssignmentType.Validate(),
			validateSequence(p.SequenceNumber, 1),
		)
	}
	if err := errors.Join(problems...); err != nil {
		return ReorderStopsCommand{}, err
	}

	return ReorderStopsCommand{
		truckloadID: truckloadID,
		positions:   append([]StopPosition(nil), positions...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ReorderStopsCommand) Validate() error {
	return c.guard.Validate(ErrReorderStopsCommandIsNotConstructed)
}

func (c ReorderStopsCommand) TruckloadID() kernel.UUID { return c.truckloadID }

func (c ReorderStopsCommand) Positions() []StopPosition {
	return append([]StopPosition(nil), c.positions...)
}
