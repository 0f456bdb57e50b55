// Package commands contains the operations that change dispatch state.
// Every handler validates its command, opens one unit of work, takes row locks
// truckload first and orders by ascending id, and commits explicitly. The
// deferred rollback releases locks on every other path.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	TruckloadRepoFactory interface {
		TruckloadRepository() ports.TruckloadRepository
	}

	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	GoodsRepoFactory interface {
		GoodsRepository() ports.GoodsRepository
	}

	// OrderUoW covers operations on a single order and its goods.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		GoodsRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TruckloadUoW covers operations that touch only the truckload row.
	TruckloadUoW interface {
		TxManager
		TruckloadRepoFactory
	}

	TruckloadUoWFactory interface {
		Create() TruckloadUoW
	}

	// UoW spans truckloads, their stops, orders and goods.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tl, err := uow.TruckloadRepository().GetForUpdate(ctx, id)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TruckloadRepoFactory
		AssignmentRepoFactory
		GoodsRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
