package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/truckload"
)

// TruckloadRepository defines the persistence contract for truckload aggregates.
type TruckloadRepository interface {
	Add(ctx context.Context, aggregate *truckload.Truckload) error
	Update(ctx context.Context, aggregate *truckload.Truckload) error
	Get(ctx context.Context, id kernel.UUID) (*truckload.Truckload, error)

	// GetForUpdate retrieves a truckload and holds a row lock on it until the
	// surrounding transaction ends. Every operation that edits the stops of a
	// truckload takes this lock first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*truckload.Truckload, error)

	// LockBillOfLadingPrefix serializes bill of lading issuing for one YYMM
	// month until the surrounding transaction ends.
	LockBillOfLadingPrefix(ctx context.Context, prefix string) error

	// ListBillOfLadingNumbers returns the committed numbers starting with prefix.
	ListBillOfLadingNumbers(ctx context.Context, prefix string) ([]string, error)
}
