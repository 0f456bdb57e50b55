package commands

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDraftTruckloadCommandIsNotConstructed = errors.New(
	"CreateDraftTruckloadCommand must be created via NewCreateDraftTruckloadCommand constructor",
)

// CreateDraftTruckloadCommand opens a truckload in draft, without a bill of lading.
type CreateDraftTruckloadCommand struct { //nolint:recvcheck //using for validation
	truckloadID   kernel.UUID
	driver        string
	startDate     time.Time
	endDate       time.Time
	trailerNumber string

	guard guard.ConstructorGuard
}

// NewCreateDraftTruckloadCommand only checks the shape of the input. Date
// ordering is enforced by the truckload itself.
func NewCreateDraftTruckloadCommand(
	truckloadID kernel.UUID,
	driver string,
	startDate, endDate time.Time,
	trailerNumber string,
) (CreateDraftTruckloadCommand, error) {
	cmd := CreateDraftTruckloadCommand{
		startDate:     startDate,
		endDate:       endDate,
		trailerNumber: strings.TrimSpace(trailerNumber),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		truckloadID.Validate(),
		requireText(&cmd.driver, "driver", driver),
	); err != nil {
		return CreateDraftTruckloadCommand{}, err
	}

	cmd.truckloadID = truckloadID
	return cmd, nil
}

func (c CreateDraftTruckloadCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftTruckloadCommandIsNotConstructed)
}

func (c CreateDraftTruckloadCommand) TruckloadID() kernel.UUID { return c.truckloadID }
func (c CreateDraftTruckloadCommand) Driver() string           { return c.driver }
func (c CreateDraftTruckloadCommand) StartDate() time.Time     { return c.startDate }
func (c CreateDraftTruckloadCommand) EndDate() time.Time       { return c.endDate }
func (c CreateDraftTruckloadCommand) TrailerNumber() string    { return c.trailerNumber }
