// Package jobs provides scheduled background tasks for the catering service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and each delegates to one use case:
//
//  1. OutboxRelayJob - runs RelayOutboxCommand to push pending order status changes to RabbitMQ
//  2. StockAlertJob - runs GetStockAlertsQuery and logs low or expiring stock
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewOutboxRelayJob(relayHandler, "*/5 * * * * *", 100, logger),
//		jobs.NewStockAlertJob(alertsHandler, "0 0 6 * * *", 72*time.Hour, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Failures are logged and retried on the next tick. The relay job skips a tick
// while the previous run is still publishing.
package jobs
