package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order with no legs assigned.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Acme Lumber", "Northside Builders")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	pickupCustomer   string
	deliveryCustomer string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, pickupCustomer, deliveryCustomer string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		requireText(&cmd.pickupCustomer, "pickup customer", pickupCustomer),
		requireText(&cmd.deliveryCustomer, "delivery customer", deliveryCustomer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) PickupCustomer() string {
	return c.pickupCustomer
}

func (c CreateOrderCommand) DeliveryCustomer() string {
	return c.deliveryCustomer
}

func requireText(dst *string, param, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*dst = value
	return nil
}
