package stockrepo

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/stock"
	"catering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockItemRepository implements StockItemRepository using GORM.
type GormStockItemRepository struct {
	db *gorm.DB
}

func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

func (r *GormStockItemRepository) Add(ctx context.Context, item *stock.StockItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return item.Identify(dto.ID)
}

func (r *GormStockItemRepository) Update(ctx context.Context, item *stock.StockItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&StockItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock item", dto.ID)
	}

	return nil
}

func (r *GormStockItemRepository) Get(ctx context.Context, id int64) (*stock.StockItem, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the row so that concurrent restocks of one item serialize.
func (r *GormStockItemRepository) GetForUpdate(ctx context.Context, id int64) (*stock.StockItem, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormStockItemRepository) get(db *gorm.DB, id int64) (*stock.StockItem, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("stock item id", id, 1, "unbounded")
	}

	var dto StockItemDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock item", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
