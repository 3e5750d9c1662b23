package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusPaid      = "paid"      // cobrada
	InvoiceStatusPending   = "pending"   // emitida, pendiente de cobro
	InvoiceStatusOverdue   = "overdue"   // vencida sin cobrar
	InvoiceStatusCancelled = "cancelled" // anulada
)

// Invoice representa una factura emitida por el usuario.
// Invariante: Total == Subtotal + Σ contribuciones de AdditionalTaxes.
type Invoice struct {
	ID              string
	UserID          string
	Number          string
	ClientName      string
	Date            time.Time
	Status          string
	Subtotal        decimal.Decimal
	Total           decimal.Decimal
	AdditionalTaxes []AdditionalTax
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidInvoiceStatus indica si s es un estado de factura conocido.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}
