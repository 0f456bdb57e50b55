package truckloadrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/truckload"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const bolLockNamespace = "bol:"

// GormTruckloadRepository implements ports.TruckloadRepository using GORM.
type GormTruckloadRepository struct {
	db *gorm.DB
}

func NewGormTruckloadRepository(db *gorm.DB) *GormTruckloadRepository {
	return &GormTruckloadRepository{db: db}
}

func (r *GormTruckloadRepository) Add(ctx context.Context, aggregate *truckload.Truckload) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTruckloadRepository) Update(ctx context.Context, aggregate *truckload.Truckload) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TruckloadDTO{}).
		Where("id = ?", dto.ID).
		Select("driver", "start_date", "end_date", "trailer_number", "bill_of_lading_number", "status", "is_completed").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("truckload", aggregate.ID().String())
	}

	return nil
}

func (r *GormTruckloadRepository) Get(ctx context.Context, id kernel.UUID) (*truckload.Truckload, error) {
	return r.first(r.db.WithContext(ctx), id)
}

func (r *GormTruckloadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*truckload.Truckload, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// LockBillOfLadingPrefix takes a transaction scoped advisory lock keyed on the
// month prefix. It is released by commit or rollback.
func (r *GormTruckloadRepository) LockBillOfLadingPrefix(ctx context.Context, prefix string) error {
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", bolLockNamespace+prefix).Error
}

func (r *GormTruckloadRepository) ListBillOfLadingNumbers(ctx context.Context, prefix string) ([]string, error) {
	numbers := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&TruckloadDTO{}).
		Where("bill_of_lading_number LIKE ?", prefix+"%").
		Pluck("bill_of_lading_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *GormTruckloadRepository) first(db *gorm.DB, id kernel.UUID) (*truckload.Truckload, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckloadDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truckload", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
