package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un presupuesto.
const (
	QuoteStatusPending  = "pending"  // enviado, esperando respuesta del cliente
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// Quote presupuesto enviado a un cliente.
type Quote struct {
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

// ValidQuoteStatus indica si s es un estado de presupuesto conocido.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}
