package orderrepo

import (
	"context"

	"catering/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderNumberSequence hands out order numbers from a per-prefix counter row.
//
// The counter row is locked with SELECT ... FOR UPDATE inside the caller's
// transaction, so two allocations for the same prefix never observe the same
// value: the second one waits until the first transaction commits or rolls back.
// A rolled back allocation releases its number for reuse.
//
// Every allocation takes the larger of the counter and the highest number already
// present in the orders table, so numbers inserted without the counter (imports,
// manual fixes) are skipped instead of producing a duplicate on every retry.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

func (s *GormOrderNumberSequence) Next(ctx context.Context, prefix string) (order.Number, error) {
	normalized, err := order.NormalizePrefix(prefix)
	if err != nil {
		return order.Number{}, err
	}

	db := s.db.WithContext(ctx)

	if err = s.seed(db, normalized); err != nil {
		return order.Number{}, err
	}

	var counter CounterDTO
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "prefix = ?", normalized).Error
	if err != nil {
		return order.Number{}, err
	}

	highest, err := s.highestExisting(db, normalized)
	if err != nil {
		return order.Number{}, err
	}

	number, err := order.NewNumber(normalized, max(counter.LastValue, highest)+1)
	if err != nil {
		return order.Number{}, err
	}

	err = db.Model(&CounterDTO{}).
		Where("prefix = ?", normalized).
		Update("last_value", number.Sequence()).Error
	if err != nil {
		return order.Number{}, err
	}

	return number, nil
}

// seed creates the counter row for prefix if it is missing. Concurrent seeders
// race harmlessly: ON CONFLICT DO NOTHING keeps the first row.
func (s *GormOrderNumberSequence) seed(db *gorm.DB, prefix string) error {
	var exists int64
	if err := db.Model(&CounterDTO{}).Where("prefix = ?", prefix).Count(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	highest, err := s.highestExisting(db, prefix)
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CounterDTO{Prefix: prefix, LastValue: highest}).Error
}

// highestExisting returns the largest sequence stored in orders for prefix, 0 if none.
func (s *GormOrderNumberSequence) highestExisting(db *gorm.DB, prefix string) (int64, error) {
	var existing []string
	err := db.Model(&OrderDTO{}).
		Where("order_number LIKE ?", prefix+"%").
		Pluck("order_number", &existing).Error
	if err != nil {
		return 0, err
	}

	next, err := order.NextNumber(prefix, existing)
	if err != nil {
		return 0, err
	}
	return next.Sequence() - 1, nil
}
