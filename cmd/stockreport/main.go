// Command stockreport prints the current stock valuation and stock alerts as tables.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"catering/cmd"
	"catering/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	config := cmd.LoadConfig()

	var (
		includeInactive = flag.Bool("inactive", false, "include deactivated stock items in the valuation")
		horizon         = flag.Duration("horizon", config.StockExpiryHorizon, "expiry window for alerts")
		skipAlerts      = flag.Bool("skip-alerts", false, "print only the valuation")
	)
	flag.Parse()

	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	valuationHandler := queries.NewGetStockValuationQueryHandler(db)
	valuation, err := valuationHandler.Handle(ctx, queries.NewGetStockValuationQuery(*includeInactive))
	if err != nil {
		log.Fatalf("failed to load stock valuation: %v", err)
	}
	if err = renderValuation(os.Stdout, valuation); err != nil {
		log.Fatalf("failed to render valuation: %v", err)
	}

	if *skipAlerts {
		return
	}

	query, err := queries.NewGetStockAlertsQuery(time.Now(), *horizon)
	if err != nil {
		log.Fatalf("invalid alert window: %v", err)
	}
	alertsHandler := queries.NewGetStockAlertsQueryHandler(db)
	alerts, err := alertsHandler.Handle(ctx, query)
	if err != nil {
		log.Fatalf("failed to load stock alerts: %v", err)
	}
	if err = renderAlerts(os.Stdout, alerts); err != nil {
		log.Fatalf("failed to render alerts: %v", err)
	}
}
