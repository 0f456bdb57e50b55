// Package truckloadrepo persists truckload aggregates with GORM.
package truckloadrepo

import (
	"time"

	"dispatch/internal/core/domain/model/bol"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/truckload"

	"github.com/google/uuid"
)

// TruckloadDTO is the row shape of the truckloads table. The unique index on
// the bill of lading number backs the month sequencing lock.
type TruckloadDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Driver             string    `gorm:"type:varchar(255);not null"`
	StartDate          time.Time `gorm:"type:date;not null"`
	EndDate            time.Time `gorm:"type:date;not null"`
	TrailerNumber      string    `gorm:"type:varchar(64)"`
	BillOfLadingNumber *string   `gorm:"type:varchar(7);uniqueIndex:ux_truckloads_bill_of_lading_number"`
	Status             string    `gorm:"type:varchar(16);not null;index"`
	IsCompleted        bool      `gorm:"not null;default:false"`
}

func (TruckloadDTO) TableName() string {
	return "truckloads"
}

func fromDomain(aggregate *truckload.Truckload) TruckloadDTO {
	var number *string
	if n := aggregate.BillOfLading(); n != nil {
		s := n.String()
		number = &s
	}

	return TruckloadDTO{
		ID:                 aggregate.ID().Bytes(),
		Driver:             aggregate.Driver(),
		StartDate:          aggregate.StartDate(),
		EndDate:            aggregate.EndDate(),
		TrailerNumber:      aggregate.TrailerNumber(),
		BillOfLadingNumber: number,
		Status:             aggregate.Status().String(),
		IsCompleted:        aggregate.IsCompleted(),
	}
}

func toDomain(dto TruckloadDTO) (*truckload.Truckload, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := truckload.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var number *bol.Number
	if dto.BillOfLadingNumber != nil {
		parsed, parseErr := bol.Parse(*dto.BillOfLadingNumber)
		if parseErr != nil {
			return nil, parseErr
		}
		number = &parsed
	}

	return truckload.RestoreTruckload(id, dto.Driver, dto.StartDate, dto.EndDate, dto.TrailerNumber, number, status)
}
