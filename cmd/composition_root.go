package cmd

import (
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	reader     *sqlx.DB
	clock      ports.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(gormDB *gorm.DB, reader *sqlx.DB, clock ports.Clock) CompositionRoot {
	if clock == nil {
		clock = SystemClock{}
	}
	return CompositionRoot{
		gormDB:     gormDB,
		reader:     reader,
		clock:      clock,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) truckloadUoWFactory() commands.TruckloadUoWFactory {
	return FuncTruckloadUoWFactory(func() commands.TruckloadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateDraftTruckloadCommandHandler() commands.CreateDraftTruckloadCommandHandler {
	return commands.NewCreateDraftTruckloadCommandHandler(c.truckloadUoWFactory())
}

func (c *CompositionRoot) CreatePromoteTruckloadCommandHandler() commands.PromoteTruckloadCommandHandler {
	return commands.NewPromoteTruckloadCommandHandler(c.truckloadUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignLegCommandHandler() commands.AssignLegCommandHandler {
	return commands.NewAssignLegCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateUnassignLegCommandHandler() commands.UnassignLegCommandHandler {
	return commands.NewUnassignLegCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateReorderStopsCommandHandler() commands.ReorderStopsCommandHandler {
	return commands.NewReorderStopsCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateSetLoadValueExclusionCommandHandler() commands.SetLoadValueExclusionCommandHandler {
	return commands.NewSetLoadValueExclusionCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateCompleteTruckloadCommandHandler() commands.CompleteTruckloadCommandHandler {
	return commands.NewCompleteTruckloadCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateUncompleteTruckloadCommandHandler() commands.UncompleteTruckloadCommandHandler {
	return commands.NewUncompleteTruckloadCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateGetTruckloadStopsQueryHandler() queries.GetTruckloadStopsQueryHandler {
	return queries.NewGetTruckloadStopsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListSplitLoadDeductionsQueryHandler() queries.ListSplitLoadDeductionsQueryHandler {
	return queries.NewListSplitLoadDeductionsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreatePeekNextBOLQueryHandler() queries.PeekNextBOLQueryHandler {
	return queries.NewPeekNextBOLQueryHandler(c.reader, c.clock)
}

func (c *CompositionRoot) CreateFindSequenceGapsQueryHandler() queries.FindSequenceGapsQueryHandler {
	return queries.NewFindSequenceGapsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateFindOrderDriftQueryHandler() queries.FindOrderDriftQueryHandler {
	return queries.NewFindOrderDriftQueryHandler(c.reader)
}

// SystemClock reads the wall clock in Location, or UTC when it is nil.
// Bill of lading months follow that zone, never the host's.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(c.Location)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTruckloadUoWFactory func() commands.TruckloadUoW

func (f FuncTruckloadUoWFactory) Create() commands.TruckloadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
