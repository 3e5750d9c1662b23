package entity

import "github.com/shopspring/decimal"

// Nombres con semántica fiscal propia. Cualquier otro nombre es un recargo genérico.
const (
	TaxNameIVA  = "IVA"  // impuesto sobre el valor añadido
	TaxNameIRPF = "IRPF" // retención del impuesto sobre la renta
)

// AdditionalTax línea de impuesto embebida en una factura, transacción o presupuesto.
// Si IsPercentage es true, el valor monetario es base * Amount / 100; si no, Amount tal cual.
// Amount negativo representa una retención.
type AdditionalTax struct {
	Name         string          `json:"name" validate:"required,min=1,max=40"`
	Amount       decimal.Decimal `json:"amount"`
	IsPercentage bool            `json:"isPercentage"`
}
