package fiscal

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

const moneyPlaces = 2

// QuarterBreakdown totales de un trimestre natural dentro del periodo filtrado.
type QuarterBreakdown struct {
	Quarter        int
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	VATRepercutido decimal.Decimal
	VATSoportado   decimal.Decimal
}

// Summary resumen fiscal del periodo. Todos los importes vienen redondeados a 2 decimales.
type Summary struct {
	// Ingresos: facturas cobradas
	Income         decimal.Decimal // base imponible
	IncomeGross    decimal.Decimal // total facturado (con impuestos)
	VATRepercutido decimal.Decimal // IVA devengado en ventas
	IRPFIncome     decimal.Decimal // IRPF que los clientes retuvieron

	// Gastos: transacciones de tipo expense
	Expenses      decimal.Decimal // base imponible
	ExpensesGross decimal.Decimal
	VATSoportado  decimal.Decimal // IVA deducible
	IRPFExpenses  decimal.Decimal // IRPF retenido a proveedores

	// Balances
	VATBalance          decimal.Decimal // max(0, repercutido - soportado): IVA a ingresar
	VATBalanceSigned    decimal.Decimal // repercutido - soportado, puede ser negativo (a compensar)
	IRPFBalance         decimal.Decimal // IRPFIncome - IRPFExpenses
	GrossBalance        decimal.Decimal // Income - Expenses
	VATAdjustedBalance  decimal.Decimal // GrossBalance - VATBalance
	IRPFAdjustedBalance decimal.Decimal // GrossBalance - IRPFBalance
	NetBalance          decimal.Decimal // GrossBalance - VATBalance - IRPFBalance

	// Pendientes
	PendingInvoicesCount int
	PendingInvoicesTotal decimal.Decimal
	PendingQuotesCount   int
	PendingQuotesTotal   decimal.Decimal
	AcceptedQuotesCount  int
	RejectedQuotesCount  int
	QuoteConversionRate  decimal.Decimal // aceptados / (aceptados + rechazados) * 100

	// Contadores del periodo
	InvoiceCount           int
	PaidInvoiceCount       int
	TransactionCount       int
	ExpenseCount           int
	IncomeTransactionCount int
	QuoteCount             int

	ByQuarter [4]QuarterBreakdown
}

// Aggregate combina facturas, transacciones y presupuestos del periodo en un Summary.
// Los importes se acumulan sin redondear y se redondean una sola vez al final.
// Sin registros devuelve el esquema completo a cero.
func Aggregate(
	invoices []*entity.Invoice,
	transactions []*entity.Transaction,
	quotes []*entity.Quote,
	spec PeriodSpec,
	policy FallbackPolicy,
) Summary {
	var s Summary
	for i := range s.ByQuarter {
		s.ByQuarter[i].Quarter = i + 1
	}

	for _, inv := range invoices {
		if inv == nil || !spec.Includes(inv.Date) {
			continue
		}
		s.InvoiceCount++
		switch inv.Status {
		case entity.InvoiceStatusPaid:
			b := policy.Extract(inv.Total, inv.AdditionalTaxes, true)
			s.PaidInvoiceCount++
			s.Income = s.Income.Add(b.BaseAmount)
			s.IncomeGross = s.IncomeGross.Add(inv.Total)
			s.VATRepercutido = s.VATRepercutido.Add(b.VATAmount)
			s.IRPFIncome = s.IRPFIncome.Add(b.IRPFAmount)

			q := &s.ByQuarter[Quarter(inv.Date)-1]
			q.Income = q.Income.Add(b.BaseAmount)
			q.VATRepercutido = q.VATRepercutido.Add(b.VATAmount)
		case entity.InvoiceStatusPending:
			s.PendingInvoicesCount++
			s.PendingInvoicesTotal = s.PendingInvoicesTotal.Add(inv.Total)
		}
	}

	for _, tx := range transactions {
		if tx == nil || !spec.Includes(tx.Date) {
			continue
		}
		s.TransactionCount++
		switch tx.Type {
		case entity.TransactionTypeExpense:
			b := policy.Extract(tx.Total, tx.AdditionalTaxes, false)
			s.ExpenseCount++
			s.Expenses = s.Expenses.Add(b.BaseAmount)
			s.ExpensesGross = s.ExpensesGross.Add(tx.Total)
			s.VATSoportado = s.VATSoportado.Add(b.VATAmount)
			s.IRPFExpenses = s.IRPFExpenses.Add(b.IRPFAmount)

			q := &s.ByQuarter[Quarter(tx.Date)-1]
			q.Expenses = q.Expenses.Add(b.BaseAmount)
			q.VATSoportado = q.VATSoportado.Add(b.VATAmount)
		case entity.TransactionTypeIncome:
			s.IncomeTransactionCount++
		}
	}

	for _, qt := range quotes {
		if qt == nil || !spec.Includes(qt.Date) {
			continue
		}
		s.QuoteCount++
		switch qt.Status {
		case entity.QuoteStatusPending:
			s.PendingQuotesCount++
			s.PendingQuotesTotal = s.PendingQuotesTotal.Add(qt.Total)
		case entity.QuoteStatusAccepted:
			s.AcceptedQuotesCount++
		case entity.QuoteStatusRejected:
			s.RejectedQuotesCount++
		}
	}

	s.VATBalanceSigned = s.VATRepercutido.Sub(s.VATSoportado)
	s.VATBalance = decimal.Max(decimal.Zero, s.VATBalanceSigned)
	s.IRPFBalance = s.IRPFIncome.Sub(s.IRPFExpenses)
	s.GrossBalance = s.Income.Sub(s.Expenses)
	s.VATAdjustedBalance = s.GrossBalance.Sub(s.VATBalance)
	s.IRPFAdjustedBalance = s.GrossBalance.Sub(s.IRPFBalance)
	s.NetBalance = s.GrossBalance.Sub(s.VATBalance).Sub(s.IRPFBalance)

	if decided := s.AcceptedQuotesCount + s.RejectedQuotesCount; decided > 0 {
		s.QuoteConversionRate = decimal.NewFromInt(int64(s.AcceptedQuotesCount)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(decided)))
	}

	return s.rounded()
}

// rounded redondea todos los importes a céntimos.
func (s Summary) rounded() Summary {
	for _, d := range []*decimal.Decimal{
		&s.Income, &s.IncomeGross, &s.VATRepercutido, &s.IRPFIncome,
		&s.Expenses, &s.ExpensesGross, &s.VATSoportado, &s.IRPFExpenses,
		&s.VATBalance, &s.VATBalanceSigned, &s.IRPFBalance,
		&s.GrossBalance, &s.VATAdjustedBalance, &s.IRPFAdjustedBalance, &s.NetBalance,
		&s.PendingInvoicesTotal, &s.PendingQuotesTotal, &s.QuoteConversionRate,
	} {
		*d = d.Round(moneyPlaces)
	}
	for i := range s.ByQuarter {
		q := &s.ByQuarter[i]
		q.Income = q.Income.Round(moneyPlaces)
		q.Expenses = q.Expenses.Round(moneyPlaces)
		q.VATRepercutido = q.VATRepercutido.Round(moneyPlaces)
		q.VATSoportado = q.VATSoportado.Round(moneyPlaces)
	}
	return s
}
