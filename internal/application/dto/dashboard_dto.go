package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/stats/dashboard.
// Importes en euros redondeados a 2 decimales; siempre se devuelve el esquema completo.
type DashboardSummaryDTO struct {
	// Metadatos del periodo
	Year        string    `json:"year"`
	Period      string    `json:"period"`
	PeriodLabel string    `json:"period_label"` // ej: "2º trimestre 2025"
	GeneratedAt time.Time `json:"generated_at"`
	Cached      bool      `json:"cached"`

	// Ingresos (facturas cobradas)
	Income         decimal.Decimal `json:"income"`
	IncomeGross    decimal.Decimal `json:"income_gross"`
	VATRepercutido decimal.Decimal `json:"vat_repercutido"`
	IRPFIncome     decimal.Decimal `json:"irpf_income"`

	// Gastos
	Expenses      decimal.Decimal `json:"expenses"`
	ExpensesGross decimal.Decimal `json:"expenses_gross"`
	VATSoportado  decimal.Decimal `json:"vat_soportado"`
	IRPFExpenses  decimal.Decimal `json:"irpf_expenses"`

	// Balances
	VATBalance          decimal.Decimal `json:"vat_balance"`
	VATBalanceSigned    decimal.Decimal `json:"vat_balance_signed"`
	IRPFBalance         decimal.Decimal `json:"irpf_balance"`
	GrossBalance        decimal.Decimal `json:"gross_balance"`
	VATAdjustedBalance  decimal.Decimal `json:"vat_adjusted_balance"`
	IRPFAdjustedBalance decimal.Decimal `json:"irpf_adjusted_balance"`
	NetBalance          decimal.Decimal `json:"net_balance"`

	// Pendientes
	PendingInvoicesCount int             `json:"pending_invoices_count"`
	PendingInvoicesTotal decimal.Decimal `json:"pending_invoices_total"`
	PendingQuotesCount   int             `json:"pending_quotes_count"`
	PendingQuotesTotal   decimal.Decimal `json:"pending_quotes_total"`
	AcceptedQuotesCount  int             `json:"accepted_quotes_count"`
	RejectedQuotesCount  int             `json:"rejected_quotes_count"`
	QuoteConversionRate  decimal.Decimal `json:"quote_conversion_rate"`

	// Contadores
	InvoiceCount           int `json:"invoice_count"`
	PaidInvoiceCount       int `json:"paid_invoice_count"`
	TransactionCount       int `json:"transaction_count"`
	ExpenseCount           int `json:"expense_count"`
	IncomeTransactionCount int `json:"income_transaction_count"`
	QuoteCount             int `json:"quote_count"`

	ByQuarter []QuarterDTO `json:"by_quarter"`
}

// QuarterDTO desglose de un trimestre natural.
type QuarterDTO struct {
	Quarter        int             `json:"quarter"`
	Income         decimal.Decimal `json:"income"`
	Expenses       decimal.Decimal `json:"expenses"`
	VATRepercutido decimal.Decimal `json:"vat_repercutido"`
	VATSoportado   decimal.Decimal `json:"vat_soportado"`
}

// DashboardStatusDTO respuesta de GET /api/dashboard-status.
// El cliente vuelve a pedir el resumen cuando updated_at avanza.
type DashboardStatusDTO struct {
	UpdatedAt int64  `json:"updated_at"` // epoch en milisegundos
	LastEvent string `json:"lastEvent"`
}

// CacheClearDTO respuesta de POST /api/stats/dashboard-cached/clear.
type CacheClearDTO struct {
	EntriesDeleted int `json:"entriesDeleted"`
}
