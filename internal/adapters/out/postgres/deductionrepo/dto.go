// Package deductionrepo declares the freight_deductions table. Deductions are
// written by driver pay accounting; dispatch only reads them.
package deductionrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeManual    = "manual"
	TypeAutomatic = "automatic"
)

type FreightDeductionDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TruckloadID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID       *uuid.UUID      `gorm:"type:uuid;index"`
	DeductionType string          `gorm:"type:varchar(16);not null"`
	IsSplitLoad   bool            `gorm:"not null;default:false"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AppliesTo     string          `gorm:"type:varchar(16);not null"`
	IsAddition    bool            `gorm:"not null;default:false"`
	Comment       string          `gorm:"type:text"`
}

func (FreightDeductionDTO) TableName() string {
	return "freight_deductions"
}
