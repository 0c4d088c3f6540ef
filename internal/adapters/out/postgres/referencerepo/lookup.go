package referencerepo

import (
	"context"

	"gorm.io/gorm"
)

type GormReferenceDataLookup struct {
	db *gorm.DB
}

func NewGormReferenceDataLookup(db *gorm.DB) *GormReferenceDataLookup {
	return &GormReferenceDataLookup{db: db}
}

// CatererExists ignores deactivated caterers.
func (l *GormReferenceDataLookup) CatererExists(ctx context.Context, id int64) (bool, error) {
	return l.exists(ctx, &CatererDTO{}, "id = ? AND active", id)
}

func (l *GormReferenceDataLookup) AirportExists(ctx context.Context, id int64) (bool, error) {
	return l.exists(ctx, &AirportDTO{}, "id = ?", id)
}

func (l *GormReferenceDataLookup) exists(ctx context.Context, model any, cond string, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	var count int64
	if err := l.db.WithContext(ctx).Model(model).Where(cond, id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
