package ports

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for truckload stops.
type AssignmentRepository interface {
	// Add inserts a stop. A stop already bound for the same order leg is
	// reported as a ConflictError.
	Add(ctx context.Context, a *assignment.Assignment) error

	Update(ctx context.Context, a *assignment.Assignment) error

	// Delete hard-deletes a stop.
	Delete(ctx context.Context, id kernel.UUID) error

	// FindByOrderLeg returns the stop bound for the order leg on any truckload,
	// or an ObjectNotFoundError.
	FindByOrderLeg(ctx context.Context, orderID kernel.UUID, t assignment.Type) (*assignment.Assignment, error)

	// ListByTruckload returns the stops of a truckload ordered by sequence number.
	ListByTruckload(ctx context.Context, truckloadID kernel.UUID) ([]*assignment.Assignment, error)

	// ListByOrder returns every leg currently bound for an order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error)
}
