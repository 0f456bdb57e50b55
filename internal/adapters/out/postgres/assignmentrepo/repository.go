package assignmentrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/pgerr"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements ports.AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add inserts a stop. Unique index violations on the order leg surface as
// ConflictError so a race lost to a concurrent assign reads like the
// pre-checked case.
func (r *GormAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, uniqueOrderLeg) || pgerr.IsUniqueViolation(err, uniqueTruckloadOrderLeg) {
			return errs.NewConflictErrorWithCause("order leg", legKey(a.OrderID(), a.Type()), err)
		}
		return err
	}
	return nil
}

func (r *GormAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("sequence_number", "exclude_from_load_value", "is_completed").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", a.ID().String())
	}
	return nil
}

func (r *GormAssignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "id = ?", id.Bytes()).Error
}

func (r *GormAssignmentRepository) FindByOrderLeg(
	ctx context.Context,
	orderID kernel.UUID,
	t assignment.Type,
) (*assignment.Assignment, error) {
	if err := errors.Join(orderID.Validate(), t.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND assignment_type = ?", orderID.Bytes(), t.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", legKey(orderID, t))
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormAssignmentRepository) ListByTruckload(
	ctx context.Context,
	truckloadID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := truckloadID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("truckload_id = ?", truckloadID.Bytes()).
		Order("sequence_number, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormAssignmentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.Assignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("assignment_type").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func legKey(orderID kernel.UUID, t assignment.Type) string {
	return orderID.String() + "/" + t.String()
}
