package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/dashboard"
	"github.com/jhoicas/facturacion-api/internal/application/records"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *dashboard.DashboardUseCase
	RecordsUC   *records.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Dashboard fiscal
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/stats/dashboard", dashboardHandler.GetSummary)
	api.Post("/stats/dashboard-cached/clear", dashboardHandler.ClearCache)
	api.Get("/dashboard-status", dashboardHandler.GetStatus)

	// Facturas
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.RecordsUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Transacciones
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.RecordsUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Presupuestos
	quotes := api.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.RecordsUC)
	quotes.Get("/", quoteHandler.List)
	quotes.Post("/", quoteHandler.Create)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)
}
