package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrPromoteTruckloadCommandIsNotConstructed = errors.New(
		"PromoteTruckloadCommand must be created via NewPromoteTruckloadCommand constructor",
	)
	ErrCompleteTruckloadCommandIsNotConstructed = errors.New(
		"CompleteTruckloadCommand must be created via NewCompleteTruckloadCommand constructor",
	)
	ErrUncompleteTruckloadCommandIsNotConstructed = errors.New(
		"UncompleteTruckloadCommand must be created via NewUncompleteTruckloadCommand constructor",
	)
)

// truckloadRef is the payload shared by commands that only name a truckload.
type truckloadRef struct {
	truckloadID kernel.UUID
	guard       guard.ConstructorGuard
}

func newTruckloadRef(truckloadID kernel.UUID) (truckloadRef, error) {
	if err := truckloadID.Validate(); err != nil {
		return truckloadRef{}, err
	}
	return truckloadRef{truckloadID: truckloadID, guard: guard.NewConstructorGuard()}, nil
}

func (r truckloadRef) TruckloadID() kernel.UUID {
	return r.truckloadID
}

// PromoteTruckloadCommand moves a draft truckload to active and issues its
// bill of lading number.
type PromoteTruckloadCommand struct{ truckloadRef }

func NewPromoteTruckloadCommand(truckloadID kernel.UUID) (PromoteTruckloadCommand, error) {
	ref, err := newTruckloadRef(truckloadID)
	return PromoteTruckloadCommand{ref}, err
}

func (c PromoteTruckloadCommand) Validate() error {
	return c.guard.Validate(ErrPromoteTruckloadCommandIsNotConstructed)
}

// CompleteTruckloadCommand closes an active truckload and everything riding on it.
type CompleteTruckloadCommand struct{ truckloadRef }

func NewCompleteTruckloadCommand(truckloadID kernel.UUID) (CompleteTruckloadCommand, error) {
	ref, err := newTruckloadRef(truckloadID)
	return CompleteTruckloadCommand{ref}, err
}

func (c CompleteTruckloadCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTruckloadCommandIsNotConstructed)
}

// UncompleteTruckloadCommand reopens a completed truckload.
type UncompleteTruckloadCommand struct{ truckloadRef }

func NewUncompleteTruckloadCommand(truckloadID kernel.UUID) (UncompleteTruckloadCommand, error) {
	ref, err := newTruckloadRef(truckloadID)
	return UncompleteTruckloadCommand{ref}, err
}

func (c UncompleteTruckloadCommand) Validate() error {
	return c.guard.Validate(ErrUncompleteTruckloadCommandIsNotConstructed)
}
