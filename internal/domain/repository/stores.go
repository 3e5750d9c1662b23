package repository

import "context"

// Stores repositorios de registros atados a la misma transacción.
type Stores struct {
	Invoices     InvoiceRepository
	Transactions TransactionRepository
	Quotes       QuoteRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si devuelve nil, rollback si no.
type TxRunner interface {
	Run(ctx context.Context, fn func(s Stores) error) error
}
