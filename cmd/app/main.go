package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"catering/cmd"
	"catering/internal/adapters/in/http"
	"catering/internal/adapters/out/postgres"
	"catering/internal/adapters/out/rabbitmq"
	"catering/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	config := cmd.LoadConfig()
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(config, slogger); err != nil {
		log.Fatalf("%v", err)
	}
}

// run wires and serves the application. Errors are returned rather than fatal so
// that the deferred cleanups (jobs, broker connection) always run.
func run(config cmd.Config, slogger *slog.Logger) error {
	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(config.DBLogLevel)),
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	app, err := cmd.NewCompositionRoot(config, db, slogger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	publisher, closePublisher, err := connectPublisher(config, slogger)
	if err != nil {
		return err
	}
	defer closePublisher()

	jobManager := app.CreateJobManager(publisher)
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, config, slogger)
	return nil
}

// connectPublisher dials RabbitMQ when configured. Without RABBITMQ_URL it returns a
// nil publisher and events stay in the outbox.
func connectPublisher(config cmd.Config, slogger *slog.Logger) (ports.EventPublisher, func(), error) {
	if config.RabbitMQURL == "" {
		slogger.Warn("RABBITMQ_URL is empty, status change notifications stay in the outbox")
		return nil, func() {}, nil
	}

	p, err := rabbitmq.Dial(config.RabbitMQURL, config.NotificationsExchange)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return p, func() {
		if closeErr := p.Close(); closeErr != nil {
			slogger.Error("Failed to close RabbitMQ connection", "error", closeErr)
		}
	}, nil
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config, slogger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	server := http.NewServer(http.Handlers{
		CreateOrder:          app.CreateCreateOrderCommandHandler(),
		TransitionOrder:      app.CreateTransitionOrderStatusCommandHandler(),
		UpdatePaymentStatus:  app.CreateUpdatePaymentStatusCommandHandler(),
		AssignCaterer:        app.CreateAssignCatererCommandHandler(),
		IssueRevision:        app.CreateIssueRevisionCommandHandler(),
		BulkUpdateOrders:     app.CreateBulkUpdateOrdersCommandHandler(),
		CreateStockItem:      app.CreateCreateStockItemCommandHandler(),
		UpdateStockItem:      app.CreateUpdateStockItemCommandHandler(),
		RestockStockItem:     app.CreateRestockStockItemCommandHandler(),
		GetOrder:             app.CreateGetOrderQueryHandler(),
		GetUncompletedOrders: app.CreateGetUncompletedOrdersQueryHandler(),
		GetStockAlerts:       app.CreateGetStockAlertsQueryHandler(),
		GetStockValuation:    app.CreateGetStockValuationQueryHandler(),
	}, config.DefaultOrderPrefix, slogger)
	server.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
