// Package assignmentrepo persists truckload stops in truckload_order_assignments.
package assignmentrepo

import (
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const (
	// One stop per (truckload, order, leg).
	uniqueTruckloadOrderLeg = "ux_assignments_truckload_order_leg"
	// A leg is bound to at most one truckload.
	uniqueOrderLeg = "ux_assignments_order_leg"
)

// AssignmentDTO is the row shape of truckload_order_assignments. Density of
// (truckload_id, sequence_number) is kept by the application, so that pair is
// indexed but not unique.
type AssignmentDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckloadID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_assignments_truckload_order_leg,priority:1;index:ix_assignments_truckload_sequence,priority:1"`
	OrderID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_assignments_truckload_order_leg,priority:2;uniqueIndex:ux_assignments_order_leg,priority:1"`
	AssignmentType       string    `gorm:"type:varchar(16);not null;uniqueIndex:ux_assignments_truckload_order_leg,priority:3;uniqueIndex:ux_assignments_order_leg,priority:2"`
	SequenceNumber       int       `gorm:"not null;index:ix_assignments_truckload_sequence,priority:2"`
	ExcludeFromLoadValue bool      `gorm:"not null;default:false"`
	IsCompleted          bool      `gorm:"not null;default:false"`
}

func (AssignmentDTO) TableName() string {
	return "truckload_order_assignments"
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                   a.ID().Bytes(),
		TruckloadID:          a.TruckloadID().Bytes(),
		OrderID:              a.OrderID().Bytes(),
		AssignmentType:       a.Type().String(),
		SequenceNumber:       a.SequenceNumber(),
		ExcludeFromLoadValue: a.ExcludeFromLoadValue(),
		IsCompleted:          a.IsCompleted(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	truckloadID, err := kernel.UUIDFromBytes(dto.TruckloadID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	t, err := assignment.ParseType(dto.AssignmentType)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(id, truckloadID, orderID, t, dto.SequenceNumber, dto.ExcludeFromLoadValue, dto.IsCompleted)
}

func toDomainList(dtos []AssignmentDTO) ([]*assignment.Assignment, error) {
	out := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
