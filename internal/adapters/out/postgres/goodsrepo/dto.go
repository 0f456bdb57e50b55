// Package goodsrepo owns the skid and vinyl line items of an order. Dispatch
// only flips their picked-up and delivered flags.
package goodsrepo

import (
	"github.com/google/uuid"
)

type SkidDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null;default:1"`
	IsPickedUp  bool      `gorm:"not null;default:false"`
	IsDelivered bool      `gorm:"not null;default:false"`
}

func (SkidDTO) TableName() string {
	return "skids"
}

type VinylDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null;default:1"`
	IsPickedUp  bool      `gorm:"not null;default:false"`
	IsDelivered bool      `gorm:"not null;default:false"`
}

func (VinylDTO) TableName() string {
	return "vinyl"
}
