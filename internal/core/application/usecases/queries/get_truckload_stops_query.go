package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetTruckloadStopsQueryIsNotConstructed = errors.New(
	"GetTruckloadStopsQuery must be created via NewGetTruckloadStopsQuery constructor",
)

// GetTruckloadStopsQuery lists a truckload's stops in driving order together
// with the customers on each order.
type GetTruckloadStopsQuery struct {
	truckloadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTruckloadStopsQuery(truckloadID kernel.UUID) (GetTruckloadStopsQuery, error) {
	if err := truckloadID.Validate(); err != nil {
		return GetTruckloadStopsQuery{}, err
	}
	return GetTruckloadStopsQuery{truckloadID: truckloadID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTruckloadStopsQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckloadStopsQueryIsNotConstructed)
}

func (q GetTruckloadStopsQuery) TruckloadID() kernel.UUID {
	return q.truckloadID
}

type GetTruckloadStopsQueryResponse struct {
	TruckloadID  string  `json:"truckloadId" db:"id"`
	Status       string  `json:"status" db:"status"`
	BillOfLading *string `json:"billOfLading,omitempty" db:"bill_of_lading_number"`
	Stops        []Stop  `json:"stops" db:"-"`
}

type Stop struct {
	AssignmentID         string `json:"assignmentId" db:"id"`
	OrderID              string `json:"orderId" db:"order_id"`
	AssignmentType       string `json:"assignmentType" db:"assignment_type"`
	SequenceNumber       int    `json:"sequenceNumber" db:"sequence_number"`
	ExcludeFromLoadValue bool   `json:"excludeFromLoadValue" db:"exclude_from_load_value"`
	IsCompleted          bool   `json:"isCompleted" db:"is_completed"`
	PickupCustomer       string `json:"pickupCustomer" db:"pickup_customer"`
	DeliveryCustomer     string `json:"deliveryCustomer" db:"delivery_customer"`
	OrderStatus          string `json:"orderStatus" db:"order_status"`
	IsTransferOrder      bool   `json:"isTransferOrder" db:"is_transfer_order"`
}
