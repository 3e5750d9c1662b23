package entity

import "time"

// Tipos de evento que avanzan la marca de cambios del dashboard.
const (
	EventInitial = "initial" // creación al primer sondeo

	EventInvoiceCreated     = "invoice-created"
	EventInvoiceUpdated     = "invoice-updated"
	EventInvoiceDeleted     = "invoice-deleted"
	EventTransactionCreated = "transaction-created"
	EventTransactionUpdated = "transaction-updated"
	EventTransactionDeleted = "transaction-deleted"
	EventQuoteCreated       = "quote-created"
	EventQuoteUpdated       = "quote-updated"
	EventQuoteDeleted       = "quote-deleted"
	EventCacheCleared       = "cache-cleared"
)

// DashboardState marca de cambios por usuario. Los clientes la consultan periódicamente
// y vuelven a pedir el resumen cuando UpdatedAt avanza.
type DashboardState struct {
	UserID        string
	LastEventType string
	UpdatedAt     time.Time
}
