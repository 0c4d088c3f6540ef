// Package http exposes the catering use cases over a JSON API built on echo.
// Handlers only translate between JSON and commands or queries; every rule lives
// in the core. Error taxonomy is mapped to status codes in one place (errorStatus).
package http

import (
	"log/slog"
	"net/http"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the API serves.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	TransitionOrder      commands.TransitionOrderStatusCommandHandler
	UpdatePaymentStatus  commands.UpdatePaymentStatusCommandHandler
	AssignCaterer        commands.AssignCatererCommandHandler
	IssueRevision        commands.IssueRevisionCommandHandler
	BulkUpdateOrders     commands.BulkUpdateOrdersCommandHandler
	CreateStockItem      commands.CreateStockItemCommandHandler
	UpdateStockItem      commands.UpdateStockItemCommandHandler
	RestockStockItem     commands.RestockStockItemCommandHandler
	GetOrder             queries.GetOrderQueryHandler
	GetUncompletedOrders queries.GetUncompletedOrdersQueryHandler
	GetStockAlerts       queries.GetStockAlertsQueryHandler
	GetStockValuation    queries.GetStockValuationQueryHandler
}

// Server handles HTTP requests for orders and stock.
type Server struct {
	h             Handlers
	defaultPrefix string
	logger        *slog.Logger
}

func NewServer(handlers Handlers, defaultPrefix string, logger *slog.Logger) *Server {
	return &Server{
		h:             handlers,
		defaultPrefix: defaultPrefix,
		logger:        logger.With("component", "http"),
	}
}

// Register mounts the API on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetUncompletedOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.TransitionOrder)
	api.PUT("/orders/:id/payment-status", s.UpdatePaymentStatus)
	api.PUT("/orders/:id/caterer", s.AssignCaterer)
	api.POST("/orders/:id/revisions", s.IssueRevision)
	api.POST("/orders/bulk", s.BulkUpdateOrders)

	api.POST("/stock-items", s.CreateStockItem)
	api.PATCH("/stock-items/:id", s.UpdateStockItem)
	api.POST("/stock-items/:id/restock", s.RestockStockItem)
	api.GET("/stock-items/alerts", s.GetStockAlerts)
	api.GET("/stock-items/valuation", s.GetStockValuation)
}
