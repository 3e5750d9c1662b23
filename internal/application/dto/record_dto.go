package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha de los registros en la API.
const DateLayout = "2006-01-02"

// TaxLineDTO línea de impuesto adicional (IVA, IRPF, recargos).
// amount negativo = retención; isPercentage indica si es tipo o importe fijo.
type TaxLineDTO struct {
	Name         string          `json:"name" validate:"required,max=40"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"isPercentage"`
}

// InvoiceRequest body para POST /api/invoices y PUT /api/invoices/:id.
// El total lo calcula el servidor a partir del subtotal y los impuestos.
type InvoiceRequest struct {
	Number          string          `json:"number" validate:"required,max=50"`
	ClientName      string          `json:"client_name" validate:"required,max=200"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Status          string          `json:"status" validate:"required,oneof=paid pending overdue cancelled"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	AdditionalTaxes []TaxLineDTO    `json:"additional_taxes" validate:"omitempty,dive"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	ClientName      string          `json:"client_name"`
	Date            string          `json:"date"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Total           decimal.Decimal `json:"total"`
	AdditionalTaxes []TaxLineDTO    `json:"additional_taxes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TransactionRequest body para POST /api/transactions y PUT /api/transactions/:id.
type TransactionRequest struct {
	Description     string          `json:"description" validate:"required,max=255"`
	Category        string          `json:"category" validate:"max=100"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Type            string          `json:"type" validate:"required,oneof=income expense"`
	Amount          decimal.Decimal `json:"amount"` // base imponible
	AdditionalTaxes []TaxLineDTO    `json:"additional_taxes" validate:"omitempty,dive"`
}

// TransactionResponse transacción en respuestas.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Date            string          `json:"date"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Total           decimal.Decimal `json:"total"`
	AdditionalTaxes []TaxLineDTO    `json:"additional_taxes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// QuoteRequest body para POST /api/quotes y PUT /api/quotes/:id.
type QuoteRequest struct {
	Number          string          `json:"number" validate:"required,max=50"`
	ClientName      string          `json:"client_name" validate:"required,max=200"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Status          string          `json:"status" validate:"required,oneof=pending accepted rejected expired"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	AdditionalTaxes []TaxLineDTO    `json:"additional_taxes" validate:"omitempty,dive"`
}

// QuoteResponse presupuesto en respuestas.
type QuoteResponse struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	ClientName      string          `json:"client_name"`
	Date            string          `json:"date"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Total           decimal.Decimal `json:"total"`
	AdditionalTaxes []TaxLineDTO    `json:"additional_taxes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
