package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction movimiento de caja (ingreso o gasto) registrado por el usuario.
// Amount es la base imponible; Total incluye los impuestos adicionales.
type Transaction struct {
	ID              string
	UserID          string
	Description     string
	Category        string
	Date            time.Time
	Type            string
	Amount          decimal.Decimal
	Total           decimal.Decimal
	AdditionalTaxes []AdditionalTax
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidTransactionType indica si t es un tipo de transacción conocido.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
