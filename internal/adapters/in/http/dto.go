package http

// Date fields travel as calendar days.
const dateLayout = "2006-01-02"

type CreateOrderRequest struct {
	OrderID          string `json:"orderId" validate:"omitempty,uuid"`
	PickupCustomer   string `json:"pickupCustomer" validate:"required"`
	DeliveryCustomer string `json:"deliveryCustomer" validate:"required"`
}

type CreateTruckloadRequest struct {
	TruckloadID   string `json:"truckloadId" validate:"omitempty,uuid"`
	Driver        string `json:"driver" validate:"required"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02"`
	TrailerNumber string `json:"trailerNumber"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

// AssignLegRequest places one order leg on a truckload. A zero or absent
// sequenceNumber appends the stop after the last one.
type AssignLegRequest struct {
	OrderID              string `json:"orderId" validate:"required,uuid"`
	AssignmentType       string `json:"assignmentType" validate:"required,oneof=pickup delivery"`
	SequenceNumber       int    `json:"sequenceNumber" validate:"min=0"`
	ExcludeFromLoadValue bool   `json:"excludeFromLoadValue"`
}

type SetLoadValueExclusionRequest struct {
	ExcludeFromLoadValue *bool `json:"excludeFromLoadValue" validate:"required"`
}

type ReorderStopsRequest struct {
	Stops []StopPositionRequest `json:"stops" validate:"required,min=1,dive"`
}

type StopPositionRequest struct {
	OrderID        string `json:"orderId" validate:"required,uuid"`
	AssignmentType string `json:"assignmentType" validate:"required,oneof=pickup delivery"`
	SequenceNumber int    `json:"sequenceNumber" validate:"min=1"`
}

// LegProjectionResponse is the order state after an assign or unassign.
type LegProjectionResponse struct {
	OrderStatus     string `json:"orderStatus"`
	IsTransferOrder bool   `json:"isTransferOrder"`
}

type PromoteResponse struct {
	BillOfLading string `json:"billOfLading,omitempty"`
	Status       string `json:"status"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
