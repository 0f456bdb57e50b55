// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of the orders table. Status is stored by name so
// collaborators can read it without this package.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickupCustomer   string    `gorm:"type:varchar(255);not null"`
	DeliveryCustomer string    `gorm:"type:varchar(255);not null"`
	Status           string    `gorm:"type:varchar(32);not null;index"`
	IsTransferOrder  bool      `gorm:"not null;default:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		PickupCustomer:   aggregate.PickupCustomer(),
		DeliveryCustomer: aggregate.DeliveryCustomer(),
		Status:           aggregate.Status().String(),
		IsTransferOrder:  aggregate.IsTransfer(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.PickupCustomer, dto.DeliveryCustomer, status, dto.IsTransferOrder)
}
