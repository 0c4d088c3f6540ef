package postgres

import (
	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/adapters/out/postgres/outboxrepo"
	"catering/internal/adapters/out/postgres/referencerepo"
	"catering/internal/adapters/out/postgres/stockrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in dependency order.
func Models() []any {
	return []any{
		&referencerepo.CatererDTO{},
		&referencerepo.AirportDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.CounterDTO{},
		&stockrepo.StockItemDTO{},
		&outboxrepo.MessageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
