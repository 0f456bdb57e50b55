package goodsrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGoodsRepository implements ports.GoodsRepository over the skids and vinyl tables.
type GormGoodsRepository struct {
	db *gorm.DB
}

func NewGormGoodsRepository(db *gorm.DB) *GormGoodsRepository {
	return &GormGoodsRepository{db: db}
}

func (r *GormGoodsRepository) SetPickedUp(ctx context.Context, orderIDs []kernel.UUID, pickedUp bool) error {
	return r.setFlag(ctx, orderIDs, "is_picked_up", pickedUp)
}

func (r *GormGoodsRepository) SetDelivered(ctx context.Context, orderIDs []kernel.UUID, delivered bool) error {
	return r.setFlag(ctx, orderIDs, "is_delivered", delivered)
}

func (r *GormGoodsRepository) setFlag(ctx context.Context, orderIDs []kernel.UUID, column string, value bool) error {
	if len(orderIDs) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		raw = append(raw, id.Bytes())
	}

	db := r.db.WithContext(ctx)
	for _, model := range []any{&SkidDTO{}, &VinylDTO{}} {
		if err := db.Model(model).Where("order_id IN ?", raw).Update(column, value).Error; err != nil {
			return err
		}
	}
	return nil
}
