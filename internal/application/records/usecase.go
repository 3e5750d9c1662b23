// Package records contiene las rutas de escritura de facturas, transacciones y
// presupuestos. Cada escritura confirmada avanza la marca de cambios del dashboard.
package records

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/fiscal"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
)

// Notifier avanza la marca de cambios del usuario. Los fallos solo se registran.
type Notifier interface {
	Notify(ctx context.Context, userID, eventType string)
}

// UseCase casos de uso CRUD de los registros fiscales.
type UseCase struct {
	invoices     repository.InvoiceRepository
	transactions repository.TransactionRepository
	quotes       repository.QuoteRepository
	tx           repository.TxRunner
	notifier     Notifier
	now          func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	invoices repository.InvoiceRepository,
	transactions repository.TransactionRepository,
	quotes repository.QuoteRepository,
	tx repository.TxRunner,
	notifier Notifier,
) *UseCase {
	return &UseCase{
		invoices:     invoices,
		transactions: transactions,
		quotes:       quotes,
		tx:           tx,
		notifier:     notifier,
		now:          time.Now,
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// taxesFromDTO convierte y valida las líneas de impuestos recibidas.
func taxesFromDTO(in []dto.TaxLineDTO) ([]entity.AdditionalTax, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]entity.AdditionalTax, len(in))
	for i, t := range in {
		out[i] = entity.AdditionalTax{Name: strings.TrimSpace(t.Name), Amount: t.Amount, IsPercentage: t.IsPercentage}
	}
	if err := fiscal.ValidateTaxes(out); err != nil {
		return nil, err
	}
	return out, nil
}

func taxesToDTO(in []entity.AdditionalTax) []dto.TaxLineDTO {
	out := make([]dto.TaxLineDTO, len(in))
	for i, t := range in {
		out[i] = dto.TaxLineDTO{Name: t.Name, Amount: t.Amount, IsPercentage: t.IsPercentage}
	}
	return out
}

// totalOf aplica la invariante total = base + Σ contribuciones, a céntimos.
func totalOf(base decimal.Decimal, taxes []entity.AdditionalTax) decimal.Decimal {
	return fiscal.TotalFromBase(base, taxes).Round(2)
}
