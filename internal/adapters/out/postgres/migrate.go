package postgres

import (
	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/deductionrepo"
	"dispatch/internal/adapters/out/postgres/goodsrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/truckloadrepo"

	"gorm.io/gorm"
)

// Models lists every table owned or read by dispatch, in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&truckloadrepo.TruckloadDTO{},
		&assignmentrepo.AssignmentDTO{},
		&goodsrepo.SkidDTO{},
		&goodsrepo.VinylDTO{},
		&deductionrepo.FreightDeductionDTO{},
	}
}

// Migrate creates or updates the schema for Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
